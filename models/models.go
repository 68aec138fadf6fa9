package models

type Role string

const (
	RoleCustomer Role = "Customer"
	RoleManager  Role = "Manager"
	RoleAdmin    Role = "Admin"
)

type Category string

const (
	CategorySmartphone Category = "Smartphone"
	CategoryLaptop     Category = "Laptop"
	CategoryAppliance  Category = "Appliance"
)

type User struct {
	Username  string `json:"username" db:"username"`
	Name      string `json:"name" db:"name"`
	Surname   string `json:"surname" db:"surname"`
	Password  string `json:"-" db:"password"`
	Role      Role   `json:"role" db:"role"`
	Address   string `json:"address" db:"address"`
	Birthdate string `json:"birthdate" db:"birthdate"`
}

type Product struct {
	Model        string   `json:"model" db:"model"`
	Category     Category `json:"category" db:"category"`
	Quantity     int      `json:"quantity" db:"quantity"`
	Details      string   `json:"details" db:"details"`
	SellingPrice float64  `json:"sellingPrice" db:"selling_price"`
	ArrivalDate  string   `json:"arrivalDate" db:"arrival_date"`
}

type ProductReview struct {
	Model   string `json:"model" db:"model"`
	User    string `json:"user" db:"username"`
	Score   int    `json:"score" db:"score"`
	Date    string `json:"date" db:"review_date"`
	Comment string `json:"comment" db:"comment"`
}
