package response

import (
	"log/slog"

	"rentacar/internal/domain/vehicle"
	"rentacar/internal/usecase"

	"github.com/jinzhu/copier"
)

type VehicleResponse struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Make         string  `json:"make"`
	Description  string  `json:"description,omitempty"`
	Color        string  `json:"color"`
	Year         int     `json:"year"`
	VIN          string  `json:"vin,omitempty"`
	Availability bool    `json:"availability"`
	DailyRate    float64 `json:"dailyRate"`
	Seats        int     `json:"seats"`
	Doors        int     `json:"doors"`
	Fuel         string  `json:"fuel"`
}

func FromVehicle(v vehicle.Vehicle) VehicleResponse {
	var resp VehicleResponse
	if err := copier.Copy(&resp, &v); err != nil {
		slog.Warn("failed to map vehicle response", "error", err)
	}
	return resp
}

type PageInfo struct {
	Number     int `json:"number"`
	TotalPages int `json:"totalPages"`
	TotalItems int `json:"totalItems"`
}

// ListLinks are the navigation targets the list page renders. Every link
// preserves the full query contract; reset drops to the bare route.
type ListLinks struct {
	Self  string  `json:"self"`
	Prev  *string `json:"prev,omitempty"`
	Next  *string `json:"next,omitempty"`
	Reset string  `json:"reset"`
}

type VehicleListResponse struct {
	Items   []VehicleResponse `json:"items"`
	Page    PageInfo          `json:"page"`
	Options vehicle.Options   `json:"options"`
	Links   ListLinks         `json:"links"`
}

const vehiclesPath = "/api/vehicles"

func FromVehicleList(list *usecase.VehicleList) VehicleListResponse {
	items := make([]VehicleResponse, 0, len(list.Page.Items))
	for _, v := range list.Page.Items {
		items = append(items, FromVehicle(v))
	}

	links := ListLinks{
		Self:  pathWithQuery(list.Query.Encode()),
		Reset: vehiclesPath,
	}
	if list.Page.HasPrev() {
		prev := pathWithQuery(list.Query.WithPage(list.Page.Number - 1).Encode())
		links.Prev = &prev
	}
	if list.Page.HasNext() {
		next := pathWithQuery(list.Query.WithPage(list.Page.Number + 1).Encode())
		links.Next = &next
	}

	return VehicleListResponse{
		Items: items,
		Page: PageInfo{
			Number:     list.Page.Number,
			TotalPages: list.Page.TotalPages,
			TotalItems: list.Page.TotalItems,
		},
		Options: list.Options,
		Links:   links,
	}
}

func pathWithQuery(query string) string {
	if query == "" {
		return vehiclesPath
	}
	return vehiclesPath + "?" + query
}
