package domain

// to iterate thru layers: handler -> service -> storage
type UserCreationData struct {
	Username Username
	PassHash string
	Fullname string
}

type User struct {
	Id       UserId
	Username Username
	PassHash string
	Fullname string
}

type Credentials struct {
	Username Username
	Password Password
}

// RegisteredUser is the public view of a freshly created user.
type RegisteredUser struct {
	Id       UserId   `json:"id"`
	Username Username `json:"username"`
	Fullname string   `json:"fullname"`
}
