package bot

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/Spok95/materials-catalog/internal/domain/catalog"
	"github.com/Spok95/materials-catalog/internal/domain/materials"
	"github.com/Spok95/materials-catalog/internal/infra/memstore"
)

func newTestBot() *Bot {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := catalog.NewService(memstore.Seeded(), catalog.WithLogger(log))
	return New(nil, log, svc, "р")
}

func TestReply_AddListEdit(t *testing.T) {
	b := newTestBot()
	ctx := context.Background()

	got := b.reply(ctx, "add", "Кобальт синий; Пигменты; 200; кг; 50; 500; 10; ИП Смирнов")
	if got != "Материал успешно сохранен (#4)" {
		t.Fatalf("Unexpected add reply: %q", got)
	}

	rows, _ := b.catalog.ListMaterialsForDisplay(ctx)
	text := renderMaterials(rows, b.currency)
	if !strings.Contains(text, "#4 Пигменты — Кобальт синий ⚠️") || !strings.Contains(text, "Стоимость партии: 3000.00 р") {
		t.Errorf("Unexpected listing:\n%s", text)
	}
	if !strings.Contains(text, "Цена: 50.00 р за кг") {
		t.Errorf("Expected two-decimal price in listing:\n%s", text)
	}

	form := b.reply(ctx, "form", "4")
	if form != "/edit 4 Кобальт синий;Пигменты;200;кг;50;500;10;ИП Смирнов" {
		t.Errorf("Unexpected form reply: %q", form)
	}

	if got := b.reply(ctx, "edit", "4 Кобальт синий;Пигменты;600;кг;50;500;10"); got != "Материал успешно сохранен" {
		t.Errorf("Unexpected edit reply: %q", got)
	}
	if got := b.reply(ctx, "suppliers", "4"); got != "Для этого материала нет информации о поставщиках" {
		t.Errorf("Expected no suppliers after edit, got %q", got)
	}
}

func TestReply_Errors(t *testing.T) {
	b := newTestBot()
	ctx := context.Background()

	testCases := []struct {
		cmd, args, want string
	}{
		{"add", "только имя", errFormFields.Error()},
		{"add", " ;Глина;1;кг;1;1;1", "Ошибка: введите наименование материала"},
		{"add", "X;Дерево;1;кг;1;1;1", "Ошибка: выберите тип материала из списка (/types)"},
		{"add", "X;Глина;-1;кг;1;1;1", "Ошибка: количество на складе не может быть отрицательным"},
		{"add", "X;Глина;1;кг;пачка;1;1", "Ошибка: количество в упаковке должно быть числом"},
		{"add", "X;Глина;1;кг;0;1;1", "Ошибка: количество в упаковке должно быть больше нуля"},
		{"add", "X;Глина;1;кг;1;1;-3", "Ошибка: цена не может быть отрицательной"},
		{"edit", "99 X;Глина;1;кг;1;1;1", "Материал не найден"},
		{"suppliers", "abc", "укажите номер материала, например /suppliers 1"},
		{"form", "42", "Материал не найден"},
		{"estimate", "1000 0 3", "Некорректные параметры расчёта"},
		{"estimate", "1000 2", "формат: /estimate <кол-во сырья> <параметр 1> <параметр 2>"},
	}
	for _, tc := range testCases {
		t.Run(tc.cmd+" "+tc.args, func(t *testing.T) {
			if got := b.reply(ctx, tc.cmd, tc.args); got != tc.want {
				t.Errorf("Expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestReply_SuppliersAndEstimate(t *testing.T) {
	b := newTestBot()
	ctx := context.Background()

	got := b.reply(ctx, "suppliers", "1")
	if !strings.Contains(got, `ООО "Глина и К" — рейтинг 4.5, с 15.01.2020`) {
		t.Errorf("Unexpected suppliers reply: %q", got)
	}
	if got := b.reply(ctx, "estimate", "1000 2 3"); got != "Выход продукции: 132 ед." {
		t.Errorf("Unexpected estimate reply: %q", got)
	}
	if got := b.reply(ctx, "types", ""); !strings.Contains(got, "• Глазурь") || !strings.Contains(got, "• ИП Смирнов") {
		t.Errorf("Unexpected types reply: %q", got)
	}
}

func TestValidationTextsCoverEveryReason(t *testing.T) {
	c := materials.Candidate{Name: "X", TypeName: "Глина", Quantity: "1", Unit: "кг", PackageQuantity: "1", MinQuantity: "1", Price: "1"}
	types := []materials.Type{{ID: 1, Name: "Глина"}}
	broken := []func(c *materials.Candidate){
		func(c *materials.Candidate) { c.Name = "" },
		func(c *materials.Candidate) { c.TypeName = "Дерево" },
		func(c *materials.Candidate) { c.Quantity = "x" },
		func(c *materials.Candidate) { c.Quantity = "-1" },
		func(c *materials.Candidate) { c.Unit = "" },
		func(c *materials.Candidate) { c.PackageQuantity = "x" },
		func(c *materials.Candidate) { c.PackageQuantity = "0" },
		func(c *materials.Candidate) { c.MinQuantity = "x" },
		func(c *materials.Candidate) { c.MinQuantity = "-1" },
		func(c *materials.Candidate) { c.Price = "x" },
		func(c *materials.Candidate) { c.Price = "-1" },
	}
	for i, breakIt := range broken {
		cc := c
		breakIt(&cc)
		_, err := materials.Validate(cc, types, nil)
		vErr, ok := err.(*materials.ValidationError)
		if !ok {
			t.Fatalf("case %d: expected ValidationError, got %v", i, err)
		}
		if _, ok := validationTexts[vErr.Reason]; !ok {
			t.Errorf("No Russian text for %q", vErr.Reason)
		}
	}
}

func TestParseCallback(t *testing.T) {
	testCases := []struct {
		data    string
		cmd     string
		arg     string
		wantsOK bool
	}{
		{"mat:form:3", "form", "3", true},
		{"mat:sup:12", "suppliers", "12", true},
		{"mat:del:3", "", "", false},
		{"mat:form:x", "", "", false},
		{"nav:back", "", "", false},
	}
	for _, tc := range testCases {
		cmd, arg, ok := parseCallback(tc.data)
		if ok != tc.wantsOK || cmd != tc.cmd || arg != tc.arg {
			t.Errorf("parseCallback(%q) = %q %q %v", tc.data, cmd, arg, ok)
		}
	}
}

func TestRenderHelpers(t *testing.T) {
	if got := money(0, "р"); got != "0.00 р" {
		t.Errorf("Unexpected zero money: %q", got)
	}
	if got := renderMaterials(nil, "р"); got != "Список материалов пуст" {
		t.Errorf("Unexpected empty listing: %q", got)
	}
	s := []materials.Supplier{{Name: "ИП Смирнов", Rating: 3.8, StartDate: time.Date(2021, 3, 22, 0, 0, 0, 0, time.UTC)}}
	if got := renderSuppliers(2, s); !strings.Contains(got, "• ИП Смирнов — рейтинг 3.8, с 22.03.2021") {
		t.Errorf("Unexpected suppliers: %q", got)
	}
}
