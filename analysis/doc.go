/*
Package analysis implements the pure aggregation and anomaly-detection layer
over a dataset.Table.

All functions are stateless reductions: they never mutate the table, results
depend only on the input, and repeated calls return identical output (order and
values). Every operation returns an empty result on an empty table - empty is a
displayable state, not an error.

The operations mirror the four dashboard views:

  - Temporal congestion: PassengersByHour, PassengersByDay, PassengersByMonth,
    PassengersByYear - ordered ascending by unit value.
  - Popular routes and transfer points: TopRoutes, TopTransferPoints - ordered
    descending by total, ties broken by first appearance in the table.
  - Service disruption: DetectAnomalies - z-score on daily passenger totals.
  - Regional performance: RegionPassengerTrends, RegionRevenueTrends - ordered
    descending by total, same tie-break.

Ordering is part of the contract: the rendering side consumes these results
positionally, so sequences of pairs are returned instead of maps.
*/
package analysis
