package domain

import (
	"bytes"
	"encoding/json"
)

// Pet is the pet resource as returned by the core API.
type Pet struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Species  string  `json:"species,omitempty"`
	Breed    string  `json:"breed,omitempty"`
	Age      int     `json:"age,omitempty"`
	Weight   float64 `json:"weight,omitempty"`
	Gender   string  `json:"gender,omitempty"`
	ImageURL string  `json:"image_url,omitempty"`
}

// PetList absorbs the three shapes the core API uses for a booking's pets:
// a single object, an array (possibly holding nulls), or null. Decoding
// always yields a flat list with null entries dropped, so nothing past the
// gateway ever re-checks the shape.
type PetList []Pet

func (p *PetList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*p = PetList{}
		return nil
	}

	if data[0] == '[' {
		var raw []*Pet
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		out := make(PetList, 0, len(raw))
		for _, pet := range raw {
			if pet != nil {
				out = append(out, *pet)
			}
		}
		*p = out
		return nil
	}

	var single Pet
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*p = PetList{single}
	return nil
}
