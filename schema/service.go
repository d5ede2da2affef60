package schema

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ServiceCollection = "services"
)

// Service is a generic catalog entry for a category. One is created lazily
// the first time a quote is selected for a category which has no entry yet.
type Service struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Category  string             `bson:"category" json:"category"`
	BasePrice float64            `bson:"base_price" json:"base_price"`
	ImagePath string             `bson:"image_path,omitempty" json:"image_path,omitempty"`
}
