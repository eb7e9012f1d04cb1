package entities

import (
	"time"
)

const (
	RecipeStatusPending  = "pending"
	RecipeStatusApproved = "approved"
	RecipeStatusRejected = "rejected"
)

type Recipe struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	UserID         uint    `gorm:"index;not null" json:"user_id"`
	Title          string  `gorm:"type:varchar(255);not null;index" json:"title"`
	CategoryID     *uint   `gorm:"index" json:"category_id"`
	RegionID       *uint   `gorm:"index" json:"region_id"`
	CookTime       int     `json:"cook_time"`
	ServingsMin    int     `json:"servings_min"`
	ServingsMax    int     `json:"servings_max"`
	Calories       int     `json:"calories"`
	ImageURL       string  `json:"image_url,omitempty"`
	Ingredients    string  `gorm:"type:text" json:"ingredients"`
	Instructions   string  `gorm:"type:text" json:"instructions"`
	ExtraInfo      string  `gorm:"type:text" json:"extra_info"`
	Views          int64   `gorm:"not null;default:0" json:"views"`
	Rating         float64 `gorm:"type:double precision;not null;default:0;check:rating >= 0 AND rating <= 5" json:"rating"`
	Status         string  `gorm:"type:varchar(20);not null;default:pending;index" json:"status"`
	IsUserUploaded bool    `gorm:"not null" json:"is_user_uploaded"`

	User     *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Region   *Region   `gorm:"foreignKey:RegionID;constraint:OnDelete:SET NULL"`
	Timestamp
}

// SavedRecipe is a user's bookmark; the pair is unique.
type SavedRecipe struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_saved_user_recipe" json:"user_id"`
	RecipeID  uint      `gorm:"not null;uniqueIndex:idx_saved_user_recipe;index" json:"recipe_id"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}
