package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	ridership "github.com/theoremus-urban-solutions/ridership-insights"
	"github.com/theoremus-urban-solutions/ridership-insights/analysis"
	"github.com/theoremus-urban-solutions/ridership-insights/config"
	"github.com/theoremus-urban-solutions/ridership-insights/dataset"
	"github.com/theoremus-urban-solutions/ridership-insights/formatter"
)

func main() {
	mode := flag.String("mode", "serve", "serve|oneshot")
	data := flag.String("data", "", "ridership CSV path (overrides config)")
	call := flag.String("call", "congestion", "oneshot analysis: congestion|routes|transfers|anomalies|region-passengers|region-revenue")
	unit := flag.String("unit", "hour", "congestion unit: hour|day|month|year")
	n := flag.Int("n", 0, "ranking depth for routes/transfers (0 = config default)")
	z := flag.Float64("z", 0, "anomaly z-threshold (0 = config default)")
	regions := flag.String("regions", "", "comma-separated region filter")
	routes := flag.String("routes", "", "comma-separated route filter")
	flag.Parse()

	_ = godotenv.Load()

	logger, err := ridership.NewLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := config.LoadAppConfig(); err != nil {
		// No config file is fine for local use; defaults cover everything.
		logger.Warn("config not loaded, using defaults", zap.Error(err))
		config.ApplyDefaults(&config.Config)
	}

	switch *mode {
	case "serve":
		api := ridership.NewAPI(config.Config, logger)
		if path := dataPath(*data); path != "" {
			table, err := dataset.LoadFile(path)
			if err != nil {
				logger.Fatal("preload failed", zap.String("path", path), zap.Error(err))
			}
			sess := api.Store().Create(path, table)
			logger.Info("dataset preloaded", zap.String("id", sess.ID), zap.Int("rows", table.Len()))
		}
		server := api.StartServer()
		api.HandleGracefulShutdown(server)

	case "oneshot":
		path := dataPath(*data)
		if path == "" {
			logger.Fatal("oneshot mode requires -data or dataset.path in config")
		}
		table, err := dataset.LoadFile(path)
		if err != nil {
			logger.Fatal("load failed", zap.String("path", path), zap.Error(err))
		}
		table = table.Filter(splitList(*regions), splitList(*routes))

		buf, err := runCall(table, *call, *unit, orDefaultN(*n), orDefaultZ(*z))
		if err != nil {
			logger.Fatal("analysis failed", zap.Error(err))
		}
		fmt.Println(string(buf))

	default:
		logger.Fatal("unknown mode", zap.String("mode", *mode))
	}
}

func runCall(table *dataset.Table, call, unit string, n int, z float64) ([]byte, error) {
	switch call {
	case "congestion":
		var buckets []analysis.TimeBucket
		switch unit {
		case "hour":
			buckets = analysis.PassengersByHour(table)
		case "day":
			buckets = analysis.PassengersByDay(table)
		case "month":
			buckets = analysis.PassengersByMonth(table)
		case "year":
			buckets = analysis.PassengersByYear(table)
		default:
			return nil, fmt.Errorf("unknown unit: %s", unit)
		}
		return formatter.BuildJSON(formatter.CongestionChart(unit, buckets)), nil
	case "routes":
		top, err := analysis.TopRoutes(table, n)
		if err != nil {
			return nil, err
		}
		return formatter.BuildJSON(formatter.TopRoutesChart(top)), nil
	case "transfers":
		top, err := analysis.TopTransferPoints(table, n)
		if err != nil {
			return nil, err
		}
		return formatter.BuildJSON(formatter.TransferPointsChart(top)), nil
	case "anomalies":
		anomalies, daily := analysis.DetectAnomalies(table, z)
		return formatter.BuildJSON(formatter.AnomalyChart(anomalies, daily)), nil
	case "region-passengers":
		return formatter.BuildJSON(formatter.RegionChart("Passenger Distribution by Region", analysis.RegionPassengerTrends(table))), nil
	case "region-revenue":
		return formatter.BuildJSON(formatter.RegionChart("Revenue Distribution by Region", analysis.RegionRevenueTrends(table))), nil
	}
	return nil, fmt.Errorf("unknown call: %s", call)
}

func dataPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if p := os.Getenv("RIDERSHIP_DATA"); p != "" {
		return p
	}
	return config.Config.Dataset.Path
}

func orDefaultN(n int) int {
	if n > 0 {
		return n
	}
	return config.Config.Analysis.TopN
}

func orDefaultZ(z float64) float64 {
	if z != 0 {
		return z
	}
	return config.Config.Analysis.ZThreshold
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
