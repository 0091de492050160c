package domain

// DeliveryCompanyID идентификатор службы доставки
type DeliveryCompanyID string

const (
	DeliveryAramex  DeliveryCompanyID = "aramex"
	DeliveryFaster  DeliveryCompanyID = "faster"
	DeliveryPartner DeliveryCompanyID = "partner"
	DeliveryOther   DeliveryCompanyID = "other"
)

// NoDeliveryName shown where an order has no company yet.
const NoDeliveryName = "—"

// DeliveryCompany запись статического справочника служб доставки
type DeliveryCompany struct {
	ID   DeliveryCompanyID `json:"id"`
	Name string            `json:"name"`
}

var deliveryCompanies = []DeliveryCompany{
	{ID: DeliveryAramex, Name: "أرامكس"},
	{ID: DeliveryFaster, Name: "أسرع"},
	{ID: DeliveryPartner, Name: "شريك"},
	{ID: DeliveryOther, Name: "أخرى"},
}

// DeliveryCompanies возвращает справочник в порядке объявления
func DeliveryCompanies() []DeliveryCompany {
	out := make([]DeliveryCompany, len(deliveryCompanies))
	copy(out, deliveryCompanies)
	return out
}

func (id DeliveryCompanyID) IsValid() bool {
	_, ok := LookupDeliveryCompany(id)
	return ok
}

// Ptr is a helper for optional company fields.
func (id DeliveryCompanyID) Ptr() *DeliveryCompanyID { return &id }

func LookupDeliveryCompany(id DeliveryCompanyID) (DeliveryCompany, bool) {
	for _, c := range deliveryCompanies {
		if c.ID == id {
			return c, true
		}
	}
	return DeliveryCompany{}, false
}

// DeliveryName отображаемое имя службы, "—" если служба не назначена
func DeliveryName(id *DeliveryCompanyID) string {
	if id == nil {
		return NoDeliveryName
	}
	if c, ok := LookupDeliveryCompany(*id); ok {
		return c.Name
	}
	return string(*id)
}

// CompanyStat агрегат по одной службе доставки, вычисляется на лету
type CompanyStat struct {
	ID        DeliveryCompanyID `json:"id"`
	Name      string            `json:"name"`
	Orders    int               `json:"orders"`
	Delivered int               `json:"delivered"`
	Revenue   float64           `json:"revenue"`
}
