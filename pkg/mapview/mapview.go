// Package mapview turns search results into marker and viewport instructions for a map client.
package mapview

import (
	"math"

	"github.com/google/uuid"

	"droscher.com/BusinessFinder/pkg/geo"
	"droscher.com/BusinessFinder/pkg/model"
)

const (
	DefaultZoom     = 14
	MaxZoom         = 16
	UserMarkerTitle = "Your location"
)

// DefaultCenter is used when neither the user nor any business has a position (Macaé, RJ).
var DefaultCenter = geo.Point{Lat: -22.371, Lng: -41.786}

type Bounds struct {
	SouthWest geo.Point `json:"southWest"`
	NorthEast geo.Point `json:"northEast"`
}

func (b *Bounds) extend(p geo.Point) {
	b.SouthWest.Lat = math.Min(b.SouthWest.Lat, p.Lat)
	b.SouthWest.Lng = math.Min(b.SouthWest.Lng, p.Lng)
	b.NorthEast.Lat = math.Max(b.NorthEast.Lat, p.Lat)
	b.NorthEast.Lng = math.Max(b.NorthEast.Lng, p.Lng)
}

type Info struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Address  string `json:"address"`
}

type Marker struct {
	ID       string    `json:"id,omitempty"`
	Position geo.Point `json:"position"`
	Title    string    `json:"title"`
	Info     *Info     `json:"info,omitempty"`
	User     bool      `json:"user,omitempty"`
	Selected bool      `json:"selected,omitempty"`
}

type View struct {
	Center  geo.Point `json:"center"`
	Zoom    int       `json:"zoom"`
	MaxZoom int       `json:"maxZoom"`
	Bounds  *Bounds   `json:"bounds,omitempty"`
	Markers []Marker  `json:"markers"`
}

// Render places the user marker first, then one marker per located business. Bounds are only
// set when there is at least one business marker, and then also cover the user.
func Render(businesses []model.Business, user *geo.Point, selectedID uuid.UUID) View {
	view := View{Center: DefaultCenter, Zoom: DefaultZoom, MaxZoom: MaxZoom, Markers: []Marker{}}

	if user != nil {
		view.Center = *user
		view.Markers = append(view.Markers, Marker{Position: *user, Title: UserMarkerTitle, User: true})
	}

	for i := range businesses {
		business := &businesses[i]

		point, ok := geo.PointOf(business)
		if !ok {
			continue
		}

		if view.Bounds == nil {
			view.Bounds = &Bounds{SouthWest: point, NorthEast: point}
			if user == nil {
				view.Center = point
			} else {
				view.Bounds.extend(*user)
			}
		}

		view.Bounds.extend(point)

		view.Markers = append(view.Markers, Marker{
			ID:       business.ID.String(),
			Position: point,
			Title:    business.Name,
			Info:     &Info{Name: business.Name, Category: business.Category, Address: business.Address},
			Selected: selectedID != uuid.Nil && business.ID == selectedID,
		})
	}

	return view
}
