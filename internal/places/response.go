// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package places

import "github.com/pdiddy/places-notes/pkg/types"

// Places API JSON structures. Details responses carry "result", text search
// responses carry "results".
type placesResponse struct {
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message"`
	Result       *placeResult  `json:"result"`
	Results      []placeResult `json:"results"`
}

type placeResult struct {
	Name                 string            `json:"name"`
	FormattedAddress     string            `json:"formatted_address"`
	Website              string            `json:"website"`
	FormattedPhoneNumber string            `json:"formatted_phone_number"`
	URL                  string            `json:"url"`
	Geometry             *placeGeometry    `json:"geometry"`
	EditorialSummary     *editorialSummary `json:"editorial_summary"`
}

type placeGeometry struct {
	Location *types.Coordinates `json:"location"`
}

type editorialSummary struct {
	Overview string `json:"overview"`
}

// pick selects the result matching the call shape, falling back to the other
// shape when the expected one is absent.
func (r *placesResponse) pick(details bool) *placeResult {
	first := func() *placeResult {
		if len(r.Results) > 0 {
			return &r.Results[0]
		}
		return nil
	}
	if details {
		if r.Result != nil {
			return r.Result
		}
		return first()
	}
	if res := first(); res != nil {
		return res
	}
	return r.Result
}

func (r *placeResult) normalize() *types.Place {
	p := &types.Place{
		Name:    r.Name,
		Address: r.FormattedAddress,
		URL:     r.URL,
		Website: r.Website,
		Phone:   r.FormattedPhoneNumber,
	}
	if p.Name == "" {
		p.Name = UnknownName
	}
	if r.Geometry != nil && r.Geometry.Location != nil {
		loc := *r.Geometry.Location
		p.Location = &loc
	}
	if r.EditorialSummary != nil {
		p.Summary = r.EditorialSummary.Overview
	}
	return p
}
