package model

import "strconv"

// Keyed is implemented by every persisted entity. Key returns the primary key
// as a string, or "" when the key has not been assigned yet.
type Keyed interface {
	Key() string
}

type User struct {
	Id         string `json:"id" gorm:"primaryKey;size:36"`
	Login      string `json:"login" form:"login" gorm:"uniqueIndex;not null"`
	FirstName  string `json:"firstName" form:"firstName"`
	LastName   string `json:"lastName" form:"lastName"`
	MiddleName string `json:"middleName" form:"middleName"`
	Password   string `json:"-" form:"password"` // bcrypt hash
	RoleId     *int   `json:"roleId" form:"roleId"`
	Role       *Role  `json:"role,omitempty" gorm:"foreignKey:RoleId"`
}

func (u User) Key() string { return u.Id }

type Role struct {
	Id          int    `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
}

func (r Role) Key() string {
	if r.Id == 0 {
		return ""
	}
	return strconv.Itoa(r.Id)
}

type Article struct {
	Id     string `json:"id" gorm:"primaryKey;size:36"`
	Title  string `json:"title" form:"title"`
	Text   string `json:"text" form:"text"`
	UserId string `json:"userId" form:"userId" gorm:"not null"`
	User   *User  `json:"-" gorm:"foreignKey:UserId"`
	Tags   []Tag  `json:"tags" gorm:"many2many:article_tags"`
}

func (a Article) Key() string { return a.Id }

type Tag struct {
	Id       string    `json:"id" gorm:"primaryKey;size:36"`
	Name     string    `json:"name" form:"name"`
	Articles []Article `json:"-" gorm:"many2many:article_tags"`
}

func (t Tag) Key() string { return t.Id }

type Comment struct {
	Id        string   `json:"id" gorm:"primaryKey;size:36"`
	Text      string   `json:"text" form:"text"`
	UserId    *string  `json:"userId" form:"userId"` // nil means anonymous
	User      *User    `json:"-" gorm:"foreignKey:UserId"`
	ArticleId string   `json:"articleId" form:"articleId" gorm:"not null"`
	Article   *Article `json:"-" gorm:"foreignKey:ArticleId;constraint:OnDelete:CASCADE"`
}

func (c Comment) Key() string { return c.Id }

type Setting struct {
	Id    int    `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	Key   string `json:"key" form:"key"`
	Value string `json:"value" form:"value"`
}
