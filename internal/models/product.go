package models

// Product represents a bowling ball in the catalog.
// Field names match the documents already stored in the catalog collections.
type Product struct {
	ID             int     `json:"id" bson:"_id"`
	Name           string  `json:"name" bson:"Name"`
	Weight         int     `json:"weight" bson:"Weight"`
	Colour         string  `json:"colour" bson:"Colour"`
	RG             float64 `json:"rg" bson:"RG"`
	Diff           float64 `json:"diff" bson:"Diff"`
	LaneConditions string  `json:"laneConditions" bson:"LaneConditions"`
	Coverstock     string  `json:"coverstock" bson:"Coverstock"`
	Core           string  `json:"core" bson:"Core"`
	Price          float64 `json:"price" bson:"Price"`
	IsAvailable    bool    `json:"isAvailable" bson:"IsAvailable"`
	CategoryID     int     `json:"categoryId" bson:"CategoryId"`
}
