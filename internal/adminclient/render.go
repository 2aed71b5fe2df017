package adminclient

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/projectkrs/krs/internal/server/http/dto"
)

// RenderOrders writes a one-line-per-order summary table.
func RenderOrders(w io.Writer, orders []dto.OrderResponse) error {
	table := tablewriter.NewWriter(w)
	table.Header("ID", "Code", "Name", "City", "Total", "Timestamp", "Selfie")

	for _, o := range orders {
		city := o.City
		if city == "" {
			city = deref(o.CityAuto)
		}
		row := []string{
			strconv.FormatInt(o.ID, 10),
			o.OrderCode,
			o.Name,
			city,
			formatAmount(o.Total),
			o.Timestamp,
			deref(o.SelfieFilename),
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

// RenderOrder writes every field of a single order as a two-column table.
func RenderOrder(w io.Writer, o dto.OrderResponse) error {
	table := tablewriter.NewWriter(w)
	table.Header("Field", "Value")

	rows := [][]string{
		{"id", strconv.FormatInt(o.ID, 10)},
		{"order_code", o.OrderCode},
		{"timestamp", o.Timestamp},
		{"name", o.Name},
		{"email", o.Email},
		{"phone", o.Phone},
		{"address", o.Address},
		{"city", o.City},
		{"pincode", o.Pincode},
		{"items", o.Items},
		{"total", formatAmount(o.Total)},
		{"selfie_filename", deref(o.SelfieFilename)},
		{"ip_address", deref(o.IPAddress)},
		{"city_auto", deref(o.CityAuto)},
		{"region_auto", deref(o.RegionAuto)},
		{"country_auto", deref(o.CountryAuto)},
		{"lat", derefFloat(o.Lat)},
		{"lng", derefFloat(o.Lng)},
	}
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func derefFloat(f *float64) string {
	if f == nil {
		return "-"
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}
