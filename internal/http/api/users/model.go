// Package users echoes user registrations without their password.
package users

// UserIn is a user as submitted by a client.
type UserIn struct {
	Name     string `json:"name"     validate:"required"       example:"Ann"`
	Email    string `json:"email"    validate:"required,email" example:"ann@example.com"`
	Age      *int   `json:"age"      validate:"required,gte=0" example:"30"`
	Password string `json:"password" validate:"required"       example:"s3cret-pass"`
}

// UserOut is the public view of a user. It has no password field.
type UserOut struct {
	Name  string `json:"name"  cbor:"name"  example:"Ann"`
	Email string `json:"email" cbor:"email" example:"ann@example.com"`
	Age   int    `json:"age"   cbor:"age"   example:"30"`
}

// ToOut drops the password from in.
func ToOut(in UserIn) UserOut {
	out := UserOut{Name: in.Name, Email: in.Email}
	if in.Age != nil {
		out.Age = *in.Age
	}
	return out
}
