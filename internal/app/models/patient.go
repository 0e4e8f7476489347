package models

import "go.mongodb.org/mongo-driver/bson"

type Patient struct {
	ID        string `json:"id" bson:"_id"`
	Name      string `json:"name" bson:"name"`
	SusNumber string `json:"sus_number" bson:"susNumber"`
	BirthDate string `json:"birth_date" bson:"birthDate"`
	TimeModel `bson:",inline"`
}

func (p *Patient) ConvertToBsonM() bson.M {
	return bson.M{
		"name":      p.Name,
		"susNumber": p.SusNumber,
		"birthDate": p.BirthDate,
		"updatedAt": p.UpdatedAt,
	}
}
