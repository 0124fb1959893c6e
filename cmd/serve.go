package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"github.com/vx9/stemstation/chart"
	"github.com/vx9/stemstation/constants"
	"github.com/vx9/stemstation/model"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "address to listen on")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves charts over HTTP",
	Long:  `Serves chart JSON from the charts dir, for the web client during authoring`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, code int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: detail})
}

// HandleCharts lists a summary of every chart in the charts dir.
func HandleCharts(w http.ResponseWriter, r *http.Request) {
	dir := constants.GetChartsDir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		writeError(w, 500, "Could not read charts dir: "+err.Error())
		return
	}

	res := make([]model.ChartSummary, 0)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		decoded, err := chart.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Printf("Skipping %v because: %v\n", name, err)
			continue
		}
		res = append(res, chart.Summarize(strings.TrimSuffix(name, ".json"), decoded))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// HandleChart serves one chart document verbatim.
func HandleChart(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	dat, err := os.ReadFile(filepath.Join(constants.GetChartsDir(), id+".json"))
	if err != nil {
		writeError(w, 404, "No chart with id "+id)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(dat)
}

// NewRouter routes the chart endpoints. The id pattern keeps lookups
// inside the charts dir.
func NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/charts", HandleCharts).Methods("GET")
	router.HandleFunc("/charts/{id:[A-Za-z0-9_-]+}", HandleChart).Methods("GET")
	return router
}

func serve() {
	handler := cors.Default().Handler(NewRouter())
	fmt.Printf("Serving charts from %v on %v\n", constants.GetChartsDir(), serveAddr)
	log.Fatal(http.ListenAndServe(serveAddr, handler))
}
