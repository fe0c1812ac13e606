package repository

import (
	"testing"

	"blogtask/database/model"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestUpdateArticleQuerySelectivity(t *testing.T) {
	tests := []struct {
		name      string
		query     UpdateArticleQuery
		wantTitle string
		wantText  string
	}{
		{"both set", UpdateArticleQuery{Title: strPtr("X"), Text: strPtr("Y")}, "X", "Y"},
		{"title only", UpdateArticleQuery{Title: strPtr("X")}, "X", "B"},
		{"text only", UpdateArticleQuery{Text: strPtr("Y")}, "A", "Y"},
		{"nothing set", UpdateArticleQuery{}, "A", "B"},
		{"blank overwrites", UpdateArticleQuery{Text: strPtr("")}, "A", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			article := model.Article{Title: "A", Text: "B"}
			tc.query.Apply(&article)
			assert.Equal(t, tc.wantTitle, article.Title)
			assert.Equal(t, tc.wantText, article.Text)
		})
	}
}

func TestUpdateQueryIdempotence(t *testing.T) {
	user := model.User{Login: "alice", FirstName: "Alice", Password: "hash"}
	query := UpdateUserQuery{FirstName: strPtr("Alicia")}

	query.Apply(&user)
	first := user
	query.Apply(&user)
	assert.Equal(t, first, user)
}

func TestUpdateUserQueryLeavesIdentityUntouched(t *testing.T) {
	user := model.User{Id: "id-1", Login: "alice"}
	UpdateUserQuery{Login: strPtr("bob"), Password: strPtr("p")}.Apply(&user)

	assert.Equal(t, "id-1", user.Id)
	assert.Equal(t, "bob", user.Login)
	assert.Equal(t, "p", user.Password)
}

func TestUpdateRoleQuery(t *testing.T) {
	role := model.Role{Id: 1, Name: "User", Description: "basic"}
	UpdateRoleQuery{Description: strPtr("regular member")}.Apply(&role)

	assert.Equal(t, 1, role.Id)
	assert.Equal(t, "User", role.Name)
	assert.Equal(t, "regular member", role.Description)
}

func TestUpdateTagAndCommentQueries(t *testing.T) {
	tag := model.Tag{Id: "t", Name: "old"}
	UpdateTagQuery{Name: strPtr("new")}.Apply(&tag)
	assert.Equal(t, "new", tag.Name)

	comment := model.Comment{Id: "c", Text: "old"}
	UpdateCommentQuery{}.Apply(&comment)
	assert.Equal(t, "old", comment.Text)
}
