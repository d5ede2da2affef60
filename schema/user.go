package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	UserCollection = "users"
)

// User roles
const (
	RoleUser     = "user"
	RoleProvider = "provider"
	RoleAdmin    = "admin"
)

// User is an account of the marketplace. A provider account keeps its
// marketplace profile in a separate Provider document referenced back here.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Phone        string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Role         string             `bson:"role" json:"role"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	Latitude     float64            `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude    float64            `bson:"longitude,omitempty" json:"longitude,omitempty"`
	Address      string             `bson:"address,omitempty" json:"address,omitempty"`
	AvatarPath   string             `bson:"avatar_path,omitempty" json:"avatar_path,omitempty"`
	Credits      float64            `bson:"credits" json:"credits"`
	Rating       float64            `bson:"rating" json:"rating"`
	ReferralCode string             `bson:"referral_code,omitempty" json:"referral_code,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}

// HasLocation reports whether the account ever reported a geo position.
// Coordinate (0, 0) is treated as unset, the mobile clients never send it.
func (u *User) HasLocation() bool {
	return u.Latitude != 0 || u.Longitude != 0
}
