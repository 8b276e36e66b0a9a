package schema

// UsersTable represents the 'users' table
type UsersTable struct {
	Table     string
	ID        string
	Username  string
	Password  string
	Email     string
	Role      string
	CreatedAt string
	UpdatedAt string
}

// Users is the schema definition for users
var Users = UsersTable{
	Table:     "users",
	ID:        "id",
	Username:  "username",
	Password:  "password",
	Email:     "email",
	Role:      "role",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}
