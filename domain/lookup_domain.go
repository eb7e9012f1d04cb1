package domain

var (
	MessageSuccessGetCategories = "success get categories"
	MessageSuccessGetRegions    = "success get regions"

	MessageFailedGetCategories = "failed to get categories"
	MessageFailedGetRegions    = "failed to get regions"
)

type (
	Category struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}

	Region struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}
)
