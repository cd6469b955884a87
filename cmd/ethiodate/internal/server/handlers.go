package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"golang.org/x/text/language"

	"github.com/rabitt1ove/ethiocal"
	"github.com/rabitt1ove/ethiocal/cmd/ethiodate/internal/logger"
)

type handler struct {
	conv    *ethiocal.Converter
	logger  *logger.Logger
	metrics *metrics
}

// DateQuery is the query string of both conversion endpoints. Zero or
// missing components are rejected, out-of-range ones are not.
type DateQuery struct {
	Year   int    `query:"year" validate:"required"`
	Month  int    `query:"month" validate:"required"`
	Day    int    `query:"day" validate:"required"`
	Locale string `query:"locale" validate:"omitempty,known_locale"`
}

func (q DateQuery) date() ethiocal.Date {
	return ethiocal.Date{Year: q.Year, Month: q.Month, Day: q.Day}
}

// DateJSON is a date in a response body.
type DateJSON struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

func newDateJSON(d ethiocal.Date) DateJSON {
	return DateJSON{Year: d.Year, Month: d.Month, Day: d.Day}
}

// GregorianResponse is returned by GET /api/v1/gregorian.
type GregorianResponse struct {
	Ethiopian DateJSON `json:"ethiopian"`
	Gregorian DateJSON `json:"gregorian"`
	DMY       string   `json:"dmy"`
	MDY       string   `json:"mdy"`
	YMD       string   `json:"ymd"`
	Formatted string   `json:"formatted"`
	Method    string   `json:"method"`
}

// EthiopianResponse is returned by GET /api/v1/ethiopian.
type EthiopianResponse struct {
	Gregorian DateJSON          `json:"gregorian"`
	Ethiopian DateJSON          `json:"ethiopian"`
	DMY       string            `json:"dmy"`
	MDY       string            `json:"mdy"`
	YMD       string            `json:"ymd"`
	Weekday   string            `json:"weekday"`
	Localized map[string]string `json:"localized"`
	Formatted string            `json:"formatted,omitempty"`
	Method    string            `json:"method"`
}

// JDNResponse is returned by GET /api/v1/jdn/:jdn.
type JDNResponse struct {
	JDN       int      `json:"jdn"`
	Gregorian DateJSON `json:"gregorian"`
	Ethiopian DateJSON `json:"ethiopian"`
	Weekday   string   `json:"weekday"`
}

func (h *handler) bindDate(c echo.Context) (DateQuery, error) {
	var q DateQuery
	if err := c.Bind(&q); err != nil {
		return q, echo.NewHTTPError(http.StatusBadRequest, "year, month and day must be integers")
	}
	if err := c.Validate(&q); err != nil {
		return q, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return q, nil
}

// requestLogger tags log entries with the request ID set by the middleware.
func (h *handler) requestLogger(c echo.Context) *logger.Logger {
	return h.logger.WithRequestID(c.Response().Header().Get(echo.HeaderXRequestID))
}

// toGregorian converts the Ethiopian date in the query.
func (h *handler) toGregorian(c echo.Context) error {
	q, err := h.bindDate(c)
	if err != nil {
		return err
	}

	d := q.date()
	res, err := h.conv.Gregorian(d)
	h.metrics.conversion("to_gregorian", err)
	h.requestLogger(c).LogConversion("to_gregorian", h.conv.Method().String(), d.String(), res.YMD, err)
	if err != nil {
		return conversionError(err)
	}

	return c.JSON(http.StatusOK, GregorianResponse{
		Ethiopian: newDateJSON(d),
		Gregorian: newDateJSON(res.Date),
		DMY:       res.DMY,
		MDY:       res.MDY,
		YMD:       res.YMD,
		Formatted: res.Formatted,
		Method:    h.conv.Method().String(),
	})
}

// toEthiopian converts the Gregorian date in the query. With a locale the
// response also carries the date rendered with that locale's names.
func (h *handler) toEthiopian(c echo.Context) error {
	q, err := h.bindDate(c)
	if err != nil {
		return err
	}

	d := q.date()
	res, err := h.conv.Ethiopian(d)
	h.metrics.conversion("to_ethiopian", err)
	h.requestLogger(c).LogConversion("to_ethiopian", h.conv.Method().String(), d.String(), res.YMD, err)
	if err != nil {
		return conversionError(err)
	}

	resp := EthiopianResponse{
		Gregorian: newDateJSON(d),
		Ethiopian: newDateJSON(res.Date),
		DMY:       res.DMY,
		MDY:       res.MDY,
		YMD:       res.YMD,
		Weekday:   res.Weekday.String(),
		Localized: res.Localized,
		Method:    h.conv.Method().String(),
	}
	if q.Locale != "" {
		// The validator already checked that a table matches.
		names, _ := h.conv.Names(language.Make(q.Locale))
		resp.Formatted = names.Format(res.Weekday, res.Date)
	}
	return c.JSON(http.StatusOK, resp)
}

// fromJDN renders a Julian Day Number in both calendars.
func (h *handler) fromJDN(c echo.Context) error {
	jdn, err := strconv.Atoi(c.Param("jdn"))
	if err != nil || jdn < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "jdn must be a non-negative integer")
	}
	h.metrics.conversion("from_jdn", nil)

	return c.JSON(http.StatusOK, JDNResponse{
		JDN:       jdn,
		Gregorian: newDateJSON(ethiocal.JDNToGregorian(jdn)),
		Ethiopian: newDateJSON(ethiocal.JDNToEthiopic(jdn)),
		Weekday:   ethiocal.Weekday(jdn).String(),
	})
}

// conversionError maps library errors to HTTP status codes.
func conversionError(err error) error {
	switch {
	case errors.Is(err, ethiocal.ErrMalformedInput):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ethiocal.ErrInvalidHistoricalDate):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return err
}
