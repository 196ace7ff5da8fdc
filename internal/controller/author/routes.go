package author

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the authoring API on group, normally /api/v1.
func RegisterRoutes(group *gin.RouterGroup, questions *QuestionController, editor *EditorController) {
	questionsGroup := group.Group("/questions")
	{
		questionsGroup.POST("", questions.ComposeQuestion)
		questionsGroup.GET("", questions.GetAllQuestions)
		questionsGroup.GET("/draft", questions.NewDraft)
		questionsGroup.GET("/rendered", questions.GetRenderedQuestions)
		questionsGroup.POST("/explanation-draft", questions.DraftExplanation)
		questionsGroup.DELETE("/:index", questions.DeleteQuestion)
	}

	group.POST("/render", editor.Render)

	editorGroup := group.Group("/editor")
	{
		editorGroup.POST("/formula/preview", editor.PreviewFormula)
		editorGroup.POST("/formula", editor.InsertFormula)
		editorGroup.POST("/image", editor.InsertImage)
	}

	catalogGroup := group.Group("/catalog")
	{
		catalogGroup.GET("/domains", editor.ListDomains)
		catalogGroup.GET("/domains/:domain_id/subjects", editor.ListSubjects)
	}
}
