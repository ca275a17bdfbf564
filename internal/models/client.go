package models

// Client is a wholesale customer. CompanyName is preferred for display;
// Name holds the contact person and is the fallback.
type Client struct {
	BaseModel
	CompanyName       string `json:"company_name"`
	Name              string `json:"name"`
	Phone             string `json:"phone"`
	Phone2            string `json:"phone2"`
	Email             string `json:"email"`
	ZipCode           string `json:"zip_code"`
	Address           string `json:"address"`
	Number            string `json:"number"`
	Neighborhood      string `json:"neighborhood"`
	City              string `json:"city"`
	State             string `json:"state"`
	CpfCnpj           string `json:"cpf_cnpj"`
	StateRegistration string `json:"state_registration"`
}

// DisplayName returns the company name when present, else the contact name.
func (c Client) DisplayName() string {
	if c.CompanyName != "" {
		return c.CompanyName
	}
	return c.Name
}
