package controller

import (
	"net/http"

	"blogtask/database"
	"blogtask/database/model"
	"blogtask/database/repository"
	"blogtask/logger"
	"blogtask/web/service"
	"blogtask/web/session"

	"github.com/gin-gonic/gin"
)

// ArticleController handles HTTP requests related to articles.
type ArticleController struct {
	BaseController
}

// NewArticleController creates a new ArticleController and sets up its routes.
func NewArticleController(g *gin.RouterGroup) *ArticleController {
	a := &ArticleController{}
	a.initRouter(g)
	return a
}

func (a *ArticleController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/article")

	g.GET("/list", a.getArticles)
	g.GET("/get/:id", a.getArticle)
	g.GET("/get/:id/comments", a.getArticleComments)

	g.POST("/add", a.checkLogin, a.addArticle)
	g.POST("/update/:id", a.checkLogin, a.updateArticle)
	g.POST("/setTags/:id", a.checkLogin, a.setTags)
	g.POST("/del/:id", a.checkLogin, a.delArticle)
}

func (a *ArticleController) articleService() (*service.ArticleService, *repository.UnitOfWork) {
	uow := repository.NewUnitOfWork(database.GetDB())
	return service.NewArticleService(uow), uow
}

// getArticles retrieves every article with its tags resolved.
func (a *ArticleController) getArticles(c *gin.Context) {
	svc, uow := a.articleService()
	defer uow.Close()

	articles, err := svc.GetAll()
	if err != nil {
		jsonMsg(c, "obtain articles", err)
		return
	}
	jsonObj(c, articles, nil)
}

// getArticle retrieves an article by id, with its tags resolved.
func (a *ArticleController) getArticle(c *gin.Context) {
	svc, uow := a.articleService()
	defer uow.Close()

	article, err := svc.GetByID(c.Param("id"))
	if err != nil {
		jsonMsg(c, "obtain article", err)
		return
	}
	if article == nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "article not found")
		return
	}
	jsonObj(c, article, nil)
}

// getArticleComments retrieves the comments attached to an article.
func (a *ArticleController) getArticleComments(c *gin.Context) {
	uow := repository.NewUnitOfWork(database.GetDB())
	defer uow.Close()

	comments := service.NewCommentService(uow).GetByArticle(c.Param("id"))
	jsonObj(c, comments, nil)
}

// addArticle creates a new article owned by the logged-in user.
func (a *ArticleController) addArticle(c *gin.Context) {
	article := &model.Article{}
	if err := c.ShouldBind(article); err != nil {
		jsonMsg(c, "add article", err)
		return
	}

	user := session.GetLoginUser(c)
	article.UserId = user.Id

	svc, uow := a.articleService()
	defer uow.Close()

	if err := svc.Create(article); err != nil {
		jsonMsg(c, "add article", err)
		return
	}
	logger.Infof("article %q added by %s", article.Title, user.Login)
	jsonObj(c, article, nil)
}

// updateArticle applies a partial update to an existing article.
func (a *ArticleController) updateArticle(c *gin.Context) {
	var query repository.UpdateArticleQuery
	if err := c.ShouldBind(&query); err != nil {
		jsonMsg(c, "update article", err)
		return
	}

	svc, uow := a.articleService()
	defer uow.Close()

	article, err := svc.GetByID(c.Param("id"))
	if err != nil {
		jsonMsg(c, "update article", err)
		return
	}
	if article == nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "article not found")
		return
	}

	updated, err := svc.Patch(article, query)
	if err != nil {
		jsonMsg(c, "update article", err)
		return
	}
	jsonObj(c, updated, nil)
}

// setTags replaces the tag set of an article.
func (a *ArticleController) setTags(c *gin.Context) {
	var form struct {
		TagIds []string `json:"tagIds" form:"tagIds"`
	}
	if err := c.ShouldBind(&form); err != nil {
		jsonMsg(c, "set article tags", err)
		return
	}

	svc, uow := a.articleService()
	defer uow.Close()

	article, err := svc.GetByID(c.Param("id"))
	if err != nil {
		jsonMsg(c, "set article tags", err)
		return
	}
	if article == nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "article not found")
		return
	}
	if err := svc.SetTags(article, form.TagIds); err != nil {
		jsonMsg(c, "set article tags", err)
		return
	}
	jsonObj(c, article, nil)
}

// delArticle removes an article.
func (a *ArticleController) delArticle(c *gin.Context) {
	svc, uow := a.articleService()
	defer uow.Close()

	article, err := svc.GetByID(c.Param("id"))
	if err != nil {
		jsonMsg(c, "delete article", err)
		return
	}
	if article == nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "article not found")
		return
	}
	if err := svc.Delete(article); err != nil {
		jsonMsg(c, "delete article", err)
		return
	}
	jsonMsg(c, "article deleted", nil)
}
