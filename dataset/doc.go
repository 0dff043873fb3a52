/*
Package dataset provides ridership CSV loading and the immutable in-memory table
the analysis layer operates on.

This package is data-source agnostic - it accepts an io.Reader and builds an
in-memory Table. It does NOT handle HTTP uploads or multipart parsing.

# Basic Usage

Load from any reader:

	f, _ := os.Open("ridership.csv")
	defer f.Close()

	table, err := dataset.Load(f)
	if err != nil {
	    log.Fatal(err)
	}

	filtered := table.Filter([]string{"North"}, nil)

# Schema

The CSV must carry a header row with at least the columns Timestamp,
Departure_Time, Arrival_Time, passenger_count, Route_ID, Entry_Station_ID,
Exit_Station_ID, Region and Total_Fees (matched case-insensitively). A missing
required column or an unparseable primary Timestamp fails the whole load with
*SchemaError - no partial table is ever returned. Departure_Time and
Arrival_Time are lenient: values that do not parse become absent (nil).

# Immutability

A Table is never mutated after Load. Filter returns a new Table; aggregations in
the analysis package only read. This makes every downstream computation safe to
repeat or run concurrently without synchronization.
*/
package dataset
