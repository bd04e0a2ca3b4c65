package main

import (
	_ "embed"
	"fmt"
	"html/template"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/tomz197/hearts/internal/config"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
)

//go:embed index.html
var htmlPage string

var page = template.Must(template.New("index").Parse(htmlPage))

type pageData struct {
	SSHHost string
	SSHPort string
}

func handler(data pageData) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := page.Execute(w, data); err != nil {
			log.Error("render page", "err", err)
		}
	}
}

func main() {
	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	data := pageData{
		SSHHost: config.GetEnv("SSH_DISPLAY_HOST", "your-server.com"),
		SSHPort: config.GetEnv("SSH_DISPLAY_PORT", config.DefaultSSHPort),
	}

	mux := http.NewServeMux()
	mux.Handle("/", handler(data))

	addr := fmt.Sprintf("%s:%s", host, port)
	log.Info("starting web server", "addr", "http://"+addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Error("server error", "err", err)
		os.Exit(1)
	}
}
