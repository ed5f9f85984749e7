// File: cmd/service/main.go
// @title        Annotate Me API
// @version      1.0
// @description  Annotate Me 登入頁面的欄位驗證 API
// @host         localhost:8080
// @BasePath     /api
package main

func main() {
	if err := run(); err != nil {
		logError(err)
		exitFunc(1)
	}
}
