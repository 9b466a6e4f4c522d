package core

// User is a registered tenant. The name is the only identity the service
// exposes; every todo is addressed through it.
type User struct {
	Name  string `json:"name" gorm:"primaryKey;size:20"`
	Todos []Todo `json:"-" gorm:"foreignKey:UserName;references:Name;constraint:OnDelete:CASCADE"`
}
