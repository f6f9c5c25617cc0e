package models

// Bank is the owner sentinel for properties nobody holds.
const Bank = "bank"

const (
	GroupRailroad = "railroad"
	GroupUtility  = "utility"
)

// MaxBuildings is the improvement level of a property with a hotel.
const MaxBuildings = 5

// Property is one entry of the property catalog a session starts from.
type Property struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Group string `json:"group"`
	Price int    `json:"price"`
	Cost  int    `json:"cost"`
	Rent  [6]int `json:"rent"`
}

type PropertyState struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Group     string `json:"group"`
	Price     int    `json:"price"`
	Cost      int    `json:"cost"`
	Rent      [6]int `json:"rent"`
	Buildings int    `json:"buildings"`
	Mortgaged bool   `json:"mortgaged"`
	Owner     string `json:"owner"`
	Monopoly  bool   `json:"monopoly"`
}

// Unowned reports whether the bank holds the property.
func (p PropertyState) Unowned() bool {
	return p.Owner == Bank
}

// Properties keeps every property by id plus the catalog order.
type Properties struct {
	All  []string                 `json:"all"`
	ByID map[string]PropertyState `json:"byId"`
}

func NewProperties(catalog []Property) Properties {
	props := Properties{
		All:  make([]string, 0, len(catalog)),
		ByID: make(map[string]PropertyState, len(catalog)),
	}
	for _, p := range catalog {
		props.All = append(props.All, p.ID)
		props.ByID[p.ID] = PropertyState{
			ID:    p.ID,
			Name:  p.Name,
			Group: p.Group,
			Price: p.Price,
			Cost:  p.Cost,
			Rent:  p.Rent,
			Owner: Bank,
		}
	}
	return props
}

// Clone copies the id map so callers can write to it.
func (p Properties) Clone() Properties {
	byID := make(map[string]PropertyState, len(p.ByID))
	for id, prop := range p.ByID {
		byID[id] = prop
	}
	return Properties{All: p.All, ByID: byID}
}
