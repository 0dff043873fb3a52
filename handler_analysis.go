package ridership

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/ridership-insights/analysis"
	"github.com/theoremus-urban-solutions/ridership-insights/dataset"
	"github.com/theoremus-urban-solutions/ridership-insights/formatter"
)

// filteredTable applies the regions/routes query restriction before any
// aggregator runs, mirroring the dashboard's sidebar flow.
func filteredTable(sess *Session, r *http.Request) (*dataset.Table, []string, []string) {
	regions := parseListParam(r.URL.Query().Get("regions"))
	routes := parseListParam(r.URL.Query().Get("routes"))
	return sess.Table.Filter(regions, routes), regions, routes
}

func (a *API) session(w http.ResponseWriter, r *http.Request) *Session {
	id := chi.URLParam(r, "id")
	sess := a.store.Get(id)
	if sess == nil {
		writeError(w, http.StatusNotFound, "no such dataset: "+id)
	}
	return sess
}

func (a *API) serveChart(w http.ResponseWriter, sess *Session, key string, build func() ([]byte, error)) {
	buf, err := sess.cache.getOrBuild(key, build)
	if err != nil {
		var qe *QueryError
		var pe *analysis.ParamError
		if errors.As(err, &qe) || errors.As(err, &pe) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		a.log.Error("analysis failed", zap.String("dataset", sess.ID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeRaw(w, buf)
}

func (a *API) handleCongestion(w http.ResponseWriter, r *http.Request) {
	sess := a.session(w, r)
	if sess == nil {
		return
	}
	unit, err := normalizeUnit(r.URL.Query().Get("unit"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	table, regions, routes := filteredTable(sess, r)
	key := memoKey("congestion", unit, strings.Join(regions, ","), strings.Join(routes, ","))
	a.serveChart(w, sess, key, func() ([]byte, error) {
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
		}
		return formatter.BuildJSON(formatter.CongestionChart(unit, buckets)), nil
	})
}

func (a *API) handleTopRoutes(w http.ResponseWriter, r *http.Request) {
	sess := a.session(w, r)
	if sess == nil {
		return
	}
	n, err := parsePositiveInt(r.URL.Query().Get("n"), a.cfg.Analysis.TopN)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	table, regions, routes := filteredTable(sess, r)
	key := memoKey("topRoutes", strconv.Itoa(n), strings.Join(regions, ","), strings.Join(routes, ","))
	a.serveChart(w, sess, key, func() ([]byte, error) {
		top, err := analysis.TopRoutes(table, n)
		if err != nil {
			return nil, err
		}
		return formatter.BuildJSON(formatter.TopRoutesChart(top)), nil
	})
}

func (a *API) handleTopTransferPoints(w http.ResponseWriter, r *http.Request) {
	sess := a.session(w, r)
	if sess == nil {
		return
	}
	n, err := parsePositiveInt(r.URL.Query().Get("n"), a.cfg.Analysis.TopN)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	table, regions, routes := filteredTable(sess, r)
	key := memoKey("topTransfers", strconv.Itoa(n), strings.Join(regions, ","), strings.Join(routes, ","))
	a.serveChart(w, sess, key, func() ([]byte, error) {
		top, err := analysis.TopTransferPoints(table, n)
		if err != nil {
			return nil, err
		}
		return formatter.BuildJSON(formatter.TransferPointsChart(top)), nil
	})
}

func (a *API) handleAnomalies(w http.ResponseWriter, r *http.Request) {
	sess := a.session(w, r)
	if sess == nil {
		return
	}
	z, err := parseThreshold(r.URL.Query().Get("z"), a.cfg.Analysis.ZThreshold)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	table, regions, routes := filteredTable(sess, r)
	key := memoKey("anomalies", strconv.FormatFloat(z, 'g', -1, 64), strings.Join(regions, ","), strings.Join(routes, ","))
	a.serveChart(w, sess, key, func() ([]byte, error) {
		anomalies, daily := analysis.DetectAnomalies(table, z)
		return formatter.BuildJSON(formatter.AnomalyChart(anomalies, daily)), nil
	})
}

func (a *API) handleRegionPassengers(w http.ResponseWriter, r *http.Request) {
	sess := a.session(w, r)
	if sess == nil {
		return
	}
	table, regions, routes := filteredTable(sess, r)
	key := memoKey("regionPassengers", strings.Join(regions, ","), strings.Join(routes, ","))
	a.serveChart(w, sess, key, func() ([]byte, error) {
		trends := analysis.RegionPassengerTrends(table)
		return formatter.BuildJSON(formatter.RegionChart("Passenger Distribution by Region", trends)), nil
	})
}

func (a *API) handleRegionRevenue(w http.ResponseWriter, r *http.Request) {
	sess := a.session(w, r)
	if sess == nil {
		return
	}
	table, regions, routes := filteredTable(sess, r)
	key := memoKey("regionRevenue", strings.Join(regions, ","), strings.Join(routes, ","))
	a.serveChart(w, sess, key, func() ([]byte, error) {
		trends := analysis.RegionRevenueTrends(table)
		return formatter.BuildJSON(formatter.RegionChart("Revenue Distribution by Region", trends)), nil
	})
}
