package repository

import "blogtask/database/model"

// Update queries carry optional replacement values for the mutable fields of
// their target entity. A nil field leaves the entity untouched; a non-nil
// field overwrites, so an empty string can deliberately blank a value.
// Identity and key fields are never part of a query.

type UpdateUserQuery struct {
	Login      *string `json:"login" form:"login"`
	FirstName  *string `json:"firstName" form:"firstName"`
	LastName   *string `json:"lastName" form:"lastName"`
	MiddleName *string `json:"middleName" form:"middleName"`
	Password   *string `json:"password" form:"password"`
}

// Apply overwrites exactly the fields present in the query.
func (q UpdateUserQuery) Apply(user *model.User) {
	if q.Login != nil {
		user.Login = *q.Login
	}
	if q.FirstName != nil {
		user.FirstName = *q.FirstName
	}
	if q.LastName != nil {
		user.LastName = *q.LastName
	}
	if q.MiddleName != nil {
		user.MiddleName = *q.MiddleName
	}
	if q.Password != nil {
		user.Password = *q.Password
	}
}

type UpdateArticleQuery struct {
	Title *string `json:"title" form:"title"`
	Text  *string `json:"text" form:"text"`
}

func (q UpdateArticleQuery) Apply(article *model.Article) {
	if q.Title != nil {
		article.Title = *q.Title
	}
	if q.Text != nil {
		article.Text = *q.Text
	}
}

type UpdateTagQuery struct {
	Name *string `json:"name" form:"name"`
}

func (q UpdateTagQuery) Apply(tag *model.Tag) {
	if q.Name != nil {
		tag.Name = *q.Name
	}
}

type UpdateCommentQuery struct {
	Text *string `json:"text" form:"text"`
}

func (q UpdateCommentQuery) Apply(comment *model.Comment) {
	if q.Text != nil {
		comment.Text = *q.Text
	}
}

type UpdateRoleQuery struct {
	Name        *string `json:"name" form:"name"`
	Description *string `json:"description" form:"description"`
}

func (q UpdateRoleQuery) Apply(role *model.Role) {
	if q.Name != nil {
		role.Name = *q.Name
	}
	if q.Description != nil {
		role.Description = *q.Description
	}
}
