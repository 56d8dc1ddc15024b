package types

import "strings"

// Area is a Swedish electricity price area (elområde).
type Area string

const (
	AreaSE1 Area = "SE1" // Luleå
	AreaSE2 Area = "SE2" // Sundsvall
	AreaSE3 Area = "SE3" // Stockholm
	AreaSE4 Area = "SE4" // Malmö
)

func Areas() []Area {
	return []Area{AreaSE1, AreaSE2, AreaSE3, AreaSE4}
}

func (a Area) String() string {
	return string(a)
}

func (a Area) Valid() bool {
	switch a {
	case AreaSE1, AreaSE2, AreaSE3, AreaSE4:
		return true
	}
	return false
}

func ParseArea(str string) (Area, error) {
	a := Area(strings.ToUpper(strings.TrimSpace(str)))
	if !a.Valid() {
		return "", ErrUnsupportedArea
	}
	return a, nil
}
