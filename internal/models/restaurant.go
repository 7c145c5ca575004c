package models

// SearchHit is one search-index match. Only the restaurant id is used; the
// index's scoring metadata is opaque to the worker.
type SearchHit struct {
	RestaurantID string  `json:"restaurantID"`
	Score        float64 `json:"-"`
}

// RestaurantLocation mirrors the stored address block. The importer writes the
// literal string "None" for address lines it scraped as null.
type RestaurantLocation struct {
	Address1 string `json:"address1" dynamodbav:"address1"`
	Address2 string `json:"address2" dynamodbav:"address2"`
	Address3 string `json:"address3" dynamodbav:"address3"`
	City     string `json:"city" dynamodbav:"city"`
	State    string `json:"state" dynamodbav:"state"`
	ZipCode  string `json:"zip_code" dynamodbav:"zip_code"`
}

// RestaurantRecord is the full details-store record, keyed by business id.
type RestaurantRecord struct {
	BusinessID string             `json:"businessID" dynamodbav:"businessID"`
	Name       string             `json:"name" dynamodbav:"name"`
	Cuisine    string             `json:"cuisine" dynamodbav:"cuisine"`
	Location   RestaurantLocation `json:"location" dynamodbav:"location"`
}

// RestaurantDetails is the display-ready projection sent to the user.
type RestaurantDetails struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}
