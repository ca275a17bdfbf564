package models

// Product is a catalog entry. Reference is the human-entered code used for
// lookup and duplicate detection; the store does not enforce its uniqueness,
// the upsert path in the product store resolves duplicates instead.
type Product struct {
	BaseModel
	Reference   string  `gorm:"index" json:"reference"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Grid        string  `json:"grid"`
	Color       string  `json:"color"`
	Sole        string  `json:"sole"`
	Material    string  `json:"material"`
	ImageURL    string  `json:"image_url"`
}
