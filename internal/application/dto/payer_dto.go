package dto

// PayerResponse perfil de pagador disponible.
type PayerResponse struct {
	Name    string `json:"name"`
	Account string `json:"account"`
	TaxCode string `json:"tax_code"`
}

// PayerListResponse lista de perfiles.
type PayerListResponse struct {
	Items []PayerResponse `json:"items"`
}
