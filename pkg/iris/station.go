package iris

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc/pool"
)

// LookupStation resolves a free-text query (name, eva number or DS100 code)
// to a station record. A query matching no station returns nil without error.
// Grouped meta stations are resolved into the same detail shape.
func (c *Client) LookupStation(ctx context.Context, query string) (*StationDetails, error) {
	document, err := c.FetchStationDocument(ctx, query)
	if err != nil {
		return nil, err
	}

	station, err := parseStationDocument(document)
	if err != nil {
		return nil, err
	}
	if station == nil {
		return nil, nil
	}

	details := parseStationDetails(*station)

	if station.Meta != "" {
		metaEvas := strings.Split(station.Meta, "|")
		meta := make([]StationDetails, len(metaEvas))

		metaPool := pool.New().WithErrors()
		for index, metaEva := range metaEvas {
			metaPool.Go(func() error {
				metaDocument, err := c.FetchStationDocument(ctx, metaEva)
				if err != nil {
					return err
				}

				metaStation, err := parseStationDocument(metaDocument)
				if err != nil {
					return err
				}
				if metaStation == nil {
					return fmt.Errorf("meta station %s of %s cannot be resolved", metaEva, details.Name)
				}

				meta[index] = parseStationDetails(*metaStation)
				return nil
			})
		}

		if err := metaPool.Wait(); err != nil {
			return nil, err
		}

		details.Meta = meta
	}

	return &details, nil
}

func parseStationDocument(document string) (*stationElement, error) {
	var stationsDoc stationsDocument
	if err := xml.Unmarshal([]byte(document), &stationsDoc); err != nil {
		return nil, fmt.Errorf("invalid station document: %w", err)
	}

	if len(stationsDoc.Stations) == 0 {
		return nil, nil
	}

	return &stationsDoc.Stations[0], nil
}

func parseStationDetails(station stationElement) StationDetails {
	return StationDetails{
		Name:      station.Name,
		Eva:       station.Eva,
		DS100:     station.DS100,
		DB:        station.DB == "true",
		Platforms: splitPath(station.Platforms),
	}
}
