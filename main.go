// Package main DesktopDev backend API
//
//	@title			DesktopDev API
//	@version		1.0.0
//	@description	Local backend of the DesktopDev developer assistant: Git workspace operations and helper passthroughs.
//	@description	POST /api/execute-command is not served and answers 404; shell execution is out of scope for this backend.
//
//	@contact.name	DesktopDev
//	@contact.url	https://github.com/SakethSripada/DesktopDev
//
//	@host			localhost:5000
//	@BasePath		/
package main

import "github.com/SakethSripada/DesktopDev/internal"

//go:generate swag init --parseDependency --outputTypes go -g ./main.go -o ./internal/server/docs

func main() {
	internal.Run()
}
