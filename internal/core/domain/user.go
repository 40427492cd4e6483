package domain

// Role distinguishes the single admin from regular team members.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// Category is the fixed department a user (and their work) belongs to.
type Category string

const (
	CategoryTelecalling    Category = "Telecalling"
	CategoryWebDevelopment Category = "Web Development"
	CategoryBlogs          Category = "Blogs"
	CategorySocialMedia    Category = "Social Media"
	CategoryAdmin          Category = "Admin"
)

// User represents a member of the fixed team roster. The roster is defined at
// process start and is never mutated at runtime.
type User struct {
	UserID   string   `json:"userID"`
	Name     string   `json:"name"`
	Role     Role     `json:"role"`
	Category Category `json:"category"`
	Password string   `json:"-"` // plaintext by design of the legacy roster, see DESIGN.md
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
