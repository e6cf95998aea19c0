package routes

import (
	"github.com/1716001473/ZhiJieHealth/controllers"
	"github.com/1716001473/ZhiJieHealth/middlewares"

	"github.com/gin-gonic/gin"
)

type Deps struct {
	JWTSecret []byte
	Auth      *controllers.AuthController
	Meals     *controllers.MealController
	Foods     *controllers.FoodController
	Users     *controllers.UserController
	Plans     *controllers.PlanController
	Reports   *controllers.ReportController
	Realtime  *controllers.RealtimeController
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", d.Auth.Register)
		auth.POST("/login", d.Auth.Login)
	}

	api := r.Group("/api/v1")
	{
		api.POST("/report/normalize", d.Reports.Normalize)
		api.GET("/report/macros", d.Reports.Macros)
	}

	protected := api.Group("")
	protected.Use(middlewares.AuthMiddleware(d.JWTSecret))
	{
		protected.GET("/food/search", d.Foods.Search)
		protected.GET("/food/:id", d.Foods.Get)

		protected.GET("/meal/daily-report", d.Meals.DailyReport)
		protected.GET("/meal/records", d.Meals.ListRecords)
		protected.POST("/meal/record", d.Meals.CreateRecord)
		protected.PUT("/meal/record/:id", d.Meals.UpdateRecord)
		protected.DELETE("/meal/record/:id", d.Meals.DeleteRecord)

		protected.GET("/user/health", d.Users.GetHealth)
		protected.PUT("/user/health", d.Users.UpdateHealth)
		protected.GET("/user/target-calories", d.Users.GetTargetCalories)
		protected.PUT("/user/target-calories", d.Users.SetTargetCalories)

		protected.GET("/plan/status", d.Plans.Status)
		protected.POST("/plan", d.Plans.Save)

		protected.GET("/alerts", d.Realtime.ListAlerts)
		protected.GET("/ws/alerts", d.Realtime.AlertsWS)
	}

	return r
}
