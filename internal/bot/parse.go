package bot

import (
	"errors"
	"strconv"
	"strings"

	"github.com/Spok95/materials-catalog/internal/domain/materials"
)

const fieldSep = ";"

var errFormFields = errors.New("ожидается 7 или 8 полей через «;»: наименование;тип;кол-во;ед.;в упаковке;мин. кол-во;цена;поставщик")

// parseForm разбирает поля формы в порядке полей окна «Добавить материал».
// Поставщик можно не указывать.
func parseForm(args string) (materials.Candidate, error) {
	parts := strings.Split(args, fieldSep)
	if len(parts) != 7 && len(parts) != 8 {
		return materials.Candidate{}, errFormFields
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	c := materials.Candidate{
		Name:            parts[0],
		TypeName:        parts[1],
		Quantity:        parts[2],
		Unit:            parts[3],
		PackageQuantity: parts[4],
		MinQuantity:     parts[5],
		Price:           parts[6],
	}
	if len(parts) == 8 {
		c.SupplierName = parts[7]
	}
	return c, nil
}

// parseID берёт идентификатор из начала аргументов, остаток возвращает.
func parseID(args string) (int64, string, error) {
	args = strings.TrimSpace(args)
	head, rest, _ := strings.Cut(args, " ")
	id, err := strconv.ParseInt(head, 10, 64)
	if err != nil || id <= 0 {
		return 0, "", errors.New("укажите номер материала, например /suppliers 1")
	}
	return id, strings.TrimSpace(rest), nil
}

func parseEstimate(args string) (qty, a, b float64, err error) {
	f := strings.Fields(args)
	if len(f) != 3 {
		return 0, 0, 0, errors.New("формат: /estimate <кол-во сырья> <параметр 1> <параметр 2>")
	}
	vals := make([]float64, 3)
	for i, s := range f {
		v, perr := strconv.ParseFloat(s, 64)
		if perr != nil {
			return 0, 0, 0, errors.New("параметры должны быть числами")
		}
		vals[i] = v
	}
	return vals[0], vals[1], vals[2], nil
}
