package routes

import (
	"github.com/gin-gonic/gin"
)

// RegisterStaticRoutes раздает изображения схем и листов из каталога ассетов
func RegisterStaticRoutes(engine *gin.Engine, assetsDir string) {
	if assetsDir == "" {
		assetsDir = "./assets"
	}
	engine.Static("/assets", assetsDir)
}
