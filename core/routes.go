package core

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"text/tabwriter"

	"github.com/gorilla/mux"
	"github.com/gregor-kafka/server/core/handlers"
)

type Routes struct {
	Router *mux.Router

	opsRoutePrefix string

	tableWriter *tabwriter.Writer
}

func (r *Routes) registerOpsRoute(method, route string, handler func(http.ResponseWriter, *http.Request)) *Routes {
	completeRoute := "/" + r.opsRoutePrefix + route

	fmt.Fprintln(r.tableWriter, method+"\t "+completeRoute)

	r.Router.HandleFunc(completeRoute, handler).Methods(method)
	return r
}

func (r *Routes) registerApiRoute(method, route string, handler func(http.ResponseWriter, *http.Request)) *Routes {
	fmt.Fprintln(r.tableWriter, method+"\t "+route)

	r.Router.HandleFunc(route, handler).Methods(method)
	return r
}

func NewRoutes(handler *handlers.Handler) *Routes {
	routes := &Routes{
		Router:         mux.NewRouter(),
		opsRoutePrefix: "ops",
		tableWriter:    tabwriter.NewWriter(os.Stdout, 5, 0, 3, ' ', tabwriter.Debug),
	}

	fmt.Fprintln(routes.tableWriter, "METHOD\t ROUTE")

	log.Println("Routes:")

	routes.
		registerOpsRoute("GET", "/health", handler.HealthCheck).
		registerOpsRoute("GET", "/config/dump", handler.ConfigDump).
		registerApiRoute("POST", "/produce", handler.ProduceOnce).
		registerApiRoute("POST", "/producer/start", handler.StartProducer).
		registerApiRoute("POST", "/producer/stop", handler.StopProducer).
		registerApiRoute("POST", "/producer/status", handler.ProducerStatus).
		registerApiRoute("POST", "/admin/replication", handler.ReplicationSnapshot).
		registerApiRoute("GET", "/live", handler.LiveChannel)

	routes.tableWriter.Flush()

	return routes
}
