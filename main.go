package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"kiosk-server/config"
	"kiosk-server/controllers"
	"kiosk-server/database"
	"kiosk-server/hub"
	"kiosk-server/middlewares"
	"kiosk-server/repositories"
	"kiosk-server/reports"
)

func main() {
	// 加载配置
	cfg := config.LoadConfig()

	// 初始化数据库
	if err := database.InitDB(cfg); err != nil {
		log.Fatalf("Database initialization failed: %v", err)
	}
	defer database.CloseDB()

	loc, err := time.LoadLocation(cfg.ReportTimezone)
	if err != nil {
		log.Fatalf("Invalid report timezone %q: %v", cfg.ReportTimezone, err)
	}

	// 实时通知中心
	notificationHub := hub.New()

	// 仓储层
	productRepo := repositories.NewProductRepository(database.DB)
	orderRepo := repositories.NewOrderRepository(database.DB)
	salesRepo := repositories.NewSalesRepository(database.DB)

	// 日报生成与定时触发
	generator := reports.NewGenerator(database.DB, loc)
	scheduler := reports.NewScheduler(generator, notificationHub, cfg, loc)
	if err := scheduler.Start(); err != nil {
		log.Fatalf("Failed to start report scheduler: %v", err)
	}
	defer scheduler.Stop()

	productController := controllers.NewProductController(productRepo, notificationHub)
	orderController := controllers.NewOrderController(orderRepo, notificationHub)
	salesController := controllers.NewSalesController(salesRepo)
	imageController := controllers.NewImageController(cfg.ImagesDir)
	reportController := controllers.NewReportController(generator, notificationHub, cfg)

	// 创建Gin路由
	r := gin.Default()

	// 应用Prometheus中间件
	r.Use(middlewares.PrometheusMiddleware())

	// 暴露Prometheus指标端点
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 健康检查端点
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service":           "kiosk-server",
			"connected_clients": notificationHub.ClientCount(),
		})
	})

	// 实时通道
	r.GET("/ws", func(c *gin.Context) {
		notificationHub.HandleConnection(c.Writer, c.Request)
	})

	r.GET("/products", productController.ListProducts)
	r.POST("/products", productController.CreateProduct)
	r.PUT("/products/:id", productController.UpdateProduct)
	r.DELETE("/products/:id", productController.DeleteProduct)
	r.PATCH("/products/:id/stock", productController.ToggleStock)

	r.GET("/orders", orderController.ListOrders)
	r.POST("/orders", orderController.CreateOrder)
	r.PATCH("/orders/:id/status", orderController.UpdateOrderStatus)
	r.DELETE("/orders/:id", orderController.DeleteOrder)

	r.POST("/record-order", salesController.RecordOrder)

	r.GET("/available-images", imageController.AvailableImages)
	r.GET("/send-daily-whatsapp", reportController.SendDailyWhatsApp)
	r.GET("/test-daily-report", reportController.TestDailyReport)
	r.GET("/notify-update", reportController.NotifyUpdate)

	// 启动服务器
	port := ":" + cfg.Port
	log.Printf("Kiosk server starting on port %s", port)
	if err := r.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
