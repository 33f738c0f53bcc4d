package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"book3d-renderer/internal/api"
)

func main() {
	addr := flag.String("addr", ":8080", "Listen address")
	debug := flag.Bool("debug", false, "Enable gin debug logging")
	flag.Parse()

	if !*debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	api.RegisterRoutes(r)

	fmt.Printf("3D book cover renderer listening on %s\n", *addr)
	if err := r.Run(*addr); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
