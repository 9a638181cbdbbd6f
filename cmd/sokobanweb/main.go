// Command sokobanweb serves the solver HTTP API.
package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/elektrokombinacija/sokoban/internal/web"
)

func main() {
	addr := flag.String("addr", ":5000", "listen address")
	flag.Parse()

	logger := log.New(os.Stdout, "sokobanweb: ", log.LstdFlags)
	server := web.NewServer(logger)

	logger.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, server.Handler()); err != nil {
		logger.Fatal(err)
	}
}
