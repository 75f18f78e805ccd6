package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/rogerio-castellano/bowling-catalog/internal/catalog"
)

var csvColumns = []string{"id", "name", "weight", "colour", "rg", "diff", "laneconditions", "coverstock", "core", "price", "isavailable", "categoryid"}

// csvRow is one parsed record. errs lists the cells that could not be
// converted to their column type.
type csvRow struct {
	product ProductRequest
	errs    []ProductValidationError
}

func parseCSV(file multipart.File) ([]csvRow, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, c := range csvColumns {
		if _, ok := index[c]; !ok {
			return nil, fmt.Errorf("CSV header is missing column %q", c)
		}
	}

	var rows []csvRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %v", err)
		}

		c := cells{record: record, index: index}
		product := ProductRequest{
			Id:             c.atoi("id", "Id"),
			Name:           c.text("name"),
			Weight:         c.atoi("weight", "Weight"),
			Colour:         c.text("colour"),
			RG:             c.number("rg", "RG"),
			Diff:           c.number("diff", "Diff"),
			LaneConditions: c.text("laneconditions"),
			Coverstock:     c.text("coverstock"),
			Core:           c.text("core"),
			Price:          c.number("price", "Price"),
			IsAvailable:    c.flag("isavailable", "IsAvailable"),
			CategoryId:     c.atoi("categoryid", "CategoryId"),
		}
		rows = append(rows, csvRow{product: product, errs: c.errs})
	}
	return rows, nil
}

// cells converts the columns of one record. An empty cell is the zero value;
// any other unparsable cell is recorded in errs.
type cells struct {
	record []string
	index  map[string]int
	errs   []ProductValidationError
}

func (c *cells) text(column string) string {
	return strings.TrimSpace(c.record[c.index[column]])
}

func (c *cells) invalid(field, raw, kind string) {
	c.errs = append(c.errs, ProductValidationError{Field: field, Description: fmt.Sprintf("%s must be %s, got %q", field, kind, raw)})
}

func (c *cells) atoi(column, field string) int {
	raw := c.text(column)
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		c.invalid(field, raw, "an integer")
	}
	return v
}

func (c *cells) number(column, field string) float64 {
	raw := c.text(column)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		c.invalid(field, raw, "a number")
	}
	return v
}

func (c *cells) flag(column, field string) bool {
	raw := c.text(column)
	if raw == "" {
		return false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		c.invalid(field, raw, "true or false")
	}
	return v
}

// ImportProductsHandler godoc
// @Summary Import products via CSV
// @Description Columns: id,name,weight,colour,rg,diff,laneConditions,coverstock,core,price,isAvailable,categoryId
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Param mode query string false "Import mode (skip|update)"
// @Success 200 {object} ImportProductsResult
// @Failure 400 {object} ErrorResponse
// @Router /api/products/import [post]
func ImportProductsHandler(w http.ResponseWriter, r *http.Request) {
	mode := strings.ToLower(r.URL.Query().Get("mode"))
	if mode != "update" {
		mode = "skip" // default
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeMessage(w, r, http.StatusBadRequest, "missing file")
		return
	}
	defer file.Close()

	rows, err := parseCSV(file)
	if err != nil {
		writeMessage(w, r, http.StatusBadRequest, err.Error())
		return
	}

	imported := 0
	errorsList := []ProductValidationError{}

	for i, row := range rows {
		rowNum := i + 2 // header is row 1
		rec := row.product

		rowErrs := row.errs
		if len(rowErrs) == 0 {
			rowErrs = validateNewProduct(rec)
		}
		if len(rowErrs) > 0 {
			errorsList = append(errorsList, ProductValidationError{Field: rowErrs[0].Field, Description: fmt.Sprintf("row %d: %s", rowNum, rowErrs[0].Description)})
			continue
		}

		_, err := catalogService.CreateProduct(r.Context(), rec.toModel())
		if catalog.KindOf(err) == catalog.KindConflict && mode == "update" {
			err = catalogService.ReplaceProduct(r.Context(), rec.Id, rec.toModel())
		}
		if err != nil {
			var ce *catalog.Error
			if !errors.As(err, &ce) {
				writeError(w, r, err)
				return
			}
			errorsList = append(errorsList, ProductValidationError{Description: fmt.Sprintf("row %d: %s", rowNum, catalog.PublicMessage(err))})
			continue
		}
		imported++
	}

	respond(w, r, http.StatusOK, ImportProductsResult{
		ImportedProductsCount: imported,
		Errors:                errorsList,
	})
}
