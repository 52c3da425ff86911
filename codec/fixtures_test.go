package codec_test

import (
	"strings"
	"time"

	"flatfile-codec/layout"
)

const (
	joLine    = "Jo        Revelo    19860412    725200000183550810     Rocky01"
	rickyLine = "Ricky     Revelo    19750101 8523952320001663231 9     Rolly02"
)

var peopleText = strings.Join([]string{joLine, rickyLine}, "\n")

func peopleSpecs() []layout.FieldSpec {
	return []layout.FieldSpec{
		{Name: "firstName", Size: 10, Type: layout.TypeString},
		{Name: "lastName", Size: 10, Type: layout.TypeString},
		{Name: "dob", Size: 8, Type: layout.TypeDate, Format: &layout.DateFormat{UTC: true, DateFormat: "%Y%m%d"}},
		{Name: "weightKg", Size: 10, Type: layout.TypeFloat, Precision: 4},
		{Name: "heightCm", Size: 10, Type: layout.TypeFloat, Precision: 4, PaddingSymbol: "0"},
		{Name: "numFingers", Size: 2, Type: layout.TypeInteger},
		{Name: "favoritePet", Size: 10, Type: layout.TypeString, PaddingPosition: "start"},
		{Name: "status", Size: 2, Type: layout.TypeString, Enum: layout.Enum{"01": "pending", "02": nil}},
	}
}

type person struct {
	FirstName   string
	LastName    string `flatfile:"lastName"`
	Dob         time.Time
	WeightKg    float64
	HeightCm    float64
	NumFingers  int
	FavoritePet string
	Status      *string
	Ignored     string `flatfile:"-"`
}
