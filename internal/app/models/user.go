package models

import "go.mongodb.org/mongo-driver/bson"

type User struct {
	ID        string `json:"id" bson:"_id"`
	Name      string `json:"name" bson:"name"`
	SusNumber string `json:"sus_number" bson:"susNumber"`
	Role      Role   `json:"role" bson:"role"`
	Username  string `json:"username" bson:"username"`
	Password  string `json:"password,omitempty" bson:"password"`
	TimeModel `bson:",inline"`
}

func (u *User) ConvertToBsonM() bson.M {
	return bson.M{
		"name":      u.Name,
		"susNumber": u.SusNumber,
		"role":      u.Role,
		"username":  u.Username,
		"password":  u.Password,
		"updatedAt": u.UpdatedAt,
	}
}
