package models

// Category groups products by manufacturer. It does not own its products:
// membership is derived from Product.CategoryID.
type Category struct {
	ID               int    `json:"id" bson:"_id"`
	ManufacturerName string `json:"manufacturerName" bson:"ManufacturerName"`
}

// CategoryView is a category together with the products that reference it.
type CategoryView struct {
	Category
	Products []Product `json:"products"`
}
