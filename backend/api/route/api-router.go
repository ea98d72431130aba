package route

import (
	"packlist/backend/api/handler"
	"packlist/backend/api/middleware"

	"github.com/gin-gonic/gin"
)

func SetApiRouter(route *gin.Engine) {
	apiRouter := route.Group("/api")
	apiRouter.Use(middleware.Language())
	{
		// Public routes (no authentication required)
		apiRouter.GET("/status", handler.GetStatus)

		// Authentication routes
		authRoutes := apiRouter.Group("/auth")
		{
			authRoutes.POST("/register", handler.Register)
			authRoutes.POST("/login", handler.Login)
			authRoutes.POST("/refresh", handler.RefreshToken)
			authRoutes.POST("/logout", handler.Logout)
		}

		// User self-service routes
		userRoute := apiRouter.Group("/user")
		userRoute.Use(middleware.JWTAuth())
		{
			userRoute.GET("/self", handler.GetSelf)
			userRoute.PUT("/self", handler.UpdateSelf)
			userRoute.DELETE("/self", handler.DeleteSelf)
		}

		// Runtime options, root only
		optionRoute := apiRouter.Group("/option")
		optionRoute.Use(middleware.JWTAuth(), middleware.RootAuth())
		{
			optionRoute.GET("", handler.GetOptions)
			optionRoute.PUT("", handler.UpdateOption)
		}

		// Checklist tree, owner path. Listing uses optional auth: a missing
		// identity yields an empty list rather than 401.
		apiRouter.GET("/checklists", middleware.OptionalJWTAuth(), handler.GetChecklists)

		checklistRoute := apiRouter.Group("/checklists")
		checklistRoute.Use(middleware.JWTAuth())
		{
			checklistRoute.POST("", handler.CreateChecklist)
			checklistRoute.GET("/:id", handler.GetChecklist)
			checklistRoute.PUT("/:id", handler.UpdateChecklist)
			checklistRoute.DELETE("/:id", handler.DeleteChecklist)
			checklistRoute.POST("/:id/clone", handler.CloneChecklist)
			checklistRoute.POST("/:id/share", handler.CreateShareLink)

			checklistRoute.GET("/:id/categories", handler.GetCategories)
			checklistRoute.POST("/:id/categories", handler.CreateCategory)
			checklistRoute.GET("/:id/categories/:categoryId", handler.GetCategory)
			checklistRoute.PUT("/:id/categories/:categoryId", handler.UpdateCategory)
			checklistRoute.DELETE("/:id/categories/:categoryId", handler.DeleteCategory)

			checklistRoute.GET("/:id/categories/:categoryId/files", handler.GetCategoryFiles)
			checklistRoute.POST("/:id/categories/:categoryId/files", handler.UploadCategoryFile)
			checklistRoute.DELETE("/:id/categories/:categoryId/files/:fileId", handler.DeleteCategoryFile)

			checklistRoute.GET("/:id/categories/:categoryId/items", handler.GetItems)
			checklistRoute.POST("/:id/categories/:categoryId/items", handler.CreateItem)
			checklistRoute.GET("/:id/categories/:categoryId/items/:itemId", handler.GetItem)
			checklistRoute.PUT("/:id/categories/:categoryId/items/:itemId", handler.UpdateItem)
			checklistRoute.DELETE("/:id/categories/:categoryId/items/:itemId", handler.DeleteItem)

			checklistRoute.GET("/:id/categories/:categoryId/items/:itemId/files", handler.GetItemFiles)
			checklistRoute.POST("/:id/categories/:categoryId/items/:itemId/files", handler.UploadItemFile)
			checklistRoute.DELETE("/:id/categories/:categoryId/items/:itemId/files/:fileId", handler.DeleteItemFile)
		}

		// Public share tree, token path. The token in the path is the only
		// credential; reads plus file uploads plus clone are routed, nothing
		// else.
		shareRoute := apiRouter.Group("/share/:token")
		shareRoute.Use(middleware.ShareTokenAuth())
		{
			shareRoute.GET("", handler.GetSharedChecklist)
			shareRoute.POST("/clone", handler.CloneSharedChecklist)
			shareRoute.GET("/categories", handler.GetSharedCategories)
			shareRoute.GET("/categories/:categoryId", handler.GetSharedCategory)
			shareRoute.GET("/categories/:categoryId/items", handler.GetSharedItems)
			shareRoute.GET("/categories/:categoryId/items/:itemId", handler.GetSharedItem)
			shareRoute.POST("/categories/:categoryId/files", handler.UploadSharedCategoryFile)
			shareRoute.POST("/categories/:categoryId/items/:itemId/files", handler.UploadSharedItemFile)
		}
	}
}
