package domain

// TeamRoster returns the static user directory. Credentials live alongside
// the roster because there is no user management surface: the team is fixed
// and accounts are provisioned by editing this table.
func TeamRoster() []User {
	return []User{
		{UserID: "vishakha", Name: "Vishakha", Role: RoleMember, Category: CategoryTelecalling, Password: "vishakha123"},
		{UserID: "devanshi", Name: "Devanshi", Role: RoleMember, Category: CategoryTelecalling, Password: "devanshi123"},
		{UserID: "ayushi", Name: "Ayushi", Role: RoleMember, Category: CategoryWebDevelopment, Password: "ayushi123"},
		{UserID: "dishant", Name: "Dishant", Role: RoleMember, Category: CategoryBlogs, Password: "dishant123"},
		{UserID: "akash", Name: "Akash", Role: RoleMember, Category: CategoryBlogs, Password: "akash123"},
		{UserID: "me", Name: "Me", Role: RoleAdmin, Category: CategorySocialMedia, Password: "admin123"},
	}
}
