package bot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Spok95/materials-catalog/internal/domain/catalog"
	"github.com/Spok95/materials-catalog/internal/domain/materials"
	"github.com/Spok95/materials-catalog/internal/report"
)

// Catalog — операции каталога, доступные боту.
type Catalog interface {
	ListMaterialsForDisplay(ctx context.Context) ([]catalog.DisplayRow, error)
	Lookups(ctx context.Context) ([]materials.Type, []materials.Supplier, error)
	CreateMaterial(ctx context.Context, c materials.Candidate) (int64, error)
	UpdateMaterial(ctx context.Context, id int64, c materials.Candidate) error
	EditForm(ctx context.Context, id int64) (materials.Candidate, error)
	ListSuppliersForMaterial(ctx context.Context, id int64) ([]materials.Supplier, error)
	EstimateProducedUnits(qty, a, b float64) int64
}

type Bot struct {
	api      *tgbotapi.BotAPI
	log      *slog.Logger
	catalog  Catalog
	currency string
}

func New(api *tgbotapi.BotAPI, log *slog.Logger, cat Catalog, currency string) *Bot {
	return &Bot{api: api, log: log, catalog: cat, currency: currency}
}

func (b *Bot) Run(ctx context.Context, timeoutSec int) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = timeoutSec
	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case upd := <-updates:
			if upd.Message != nil && upd.Message.IsCommand() {
				b.onCommand(ctx, upd.Message)
			} else if upd.CallbackQuery != nil {
				b.onCallback(ctx, upd.CallbackQuery)
			}
		}
	}
}

func (b *Bot) send(msg tgbotapi.Chattable) {
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error("send failed", "err", err)
	}
}

func (b *Bot) onCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	switch msg.Command() {
	case "export":
		b.sendExport(ctx, chatID)
	case "materials":
		rows, err := b.catalog.ListMaterialsForDisplay(ctx)
		if err != nil {
			b.log.Error("list materials", "err", err)
			b.send(tgbotapi.NewMessage(chatID, "Ошибка загрузки материалов"))
			return
		}
		m := tgbotapi.NewMessage(chatID, renderMaterials(rows, b.currency))
		if len(rows) > 0 {
			m.ReplyMarkup = materialsKeyboard(rows)
		}
		b.send(m)
	default:
		b.send(tgbotapi.NewMessage(chatID, b.reply(ctx, msg.Command(), msg.CommandArguments())))
	}
}

// reply выполняет текстовую команду и возвращает ответ пользователю.
func (b *Bot) reply(ctx context.Context, cmd, args string) string {
	switch cmd {
	case "start", "help":
		return helpText

	case "types":
		types, suppliers, err := b.catalog.Lookups(ctx)
		if err != nil {
			return b.failure("lookups", err)
		}
		return renderLookups(types, suppliers)

	case "suppliers":
		id, _, err := parseID(args)
		if err != nil {
			return err.Error()
		}
		list, err := b.catalog.ListSuppliersForMaterial(ctx, id)
		if err != nil {
			return b.failure("suppliers", err)
		}
		return renderSuppliers(id, list)

	case "add":
		c, err := parseForm(args)
		if err != nil {
			return err.Error()
		}
		id, err := b.catalog.CreateMaterial(ctx, c)
		if err != nil {
			return b.failure("create material", err)
		}
		return fmt.Sprintf("Материал успешно сохранен (#%d)", id)

	case "form":
		id, _, err := parseID(args)
		if err != nil {
			return err.Error()
		}
		c, err := b.catalog.EditForm(ctx, id)
		if err != nil {
			return b.failure("edit form", err)
		}
		return renderForm(id, c)

	case "edit":
		id, rest, err := parseID(args)
		if err != nil {
			return err.Error()
		}
		c, err := parseForm(rest)
		if err != nil {
			return err.Error()
		}
		if err := b.catalog.UpdateMaterial(ctx, id, c); err != nil {
			return b.failure("update material", err)
		}
		return "Материал успешно сохранен"

	case "estimate":
		qty, p1, p2, err := parseEstimate(args)
		if err != nil {
			return err.Error()
		}
		n := b.catalog.EstimateProducedUnits(qty, p1, p2)
		if n == materials.UnitsUnavailable {
			return "Некорректные параметры расчёта"
		}
		return fmt.Sprintf("Выход продукции: %d ед.", n)
	}
	return "Неизвестная команда. " + helpText
}

// failure переводит ошибку каталога в текст для пользователя.
func (b *Bot) failure(op string, err error) string {
	var (
		vErr *materials.ValidationError
		nf   *materials.NotFoundError
	)
	switch {
	case errors.As(err, &vErr):
		return "Ошибка: " + validationText(vErr)
	case errors.As(err, &nf) && nf.Kind == materials.KindMaterial:
		return "Материал не найден"
	}
	b.log.Error("bot command failed", "op", op, "err", err)
	return "Произошла ошибка при выполнении команды"
}

/* Inline-кнопки: id материала передаётся в callback, а не имя */

func materialsKeyboard(rows []catalog.DisplayRow) tgbotapi.InlineKeyboardMarkup {
	kb := make([][]tgbotapi.InlineKeyboardButton, 0, len(rows))
	for _, r := range rows {
		kb = append(kb, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✏️ "+r.Name, fmt.Sprintf("mat:form:%d", r.MaterialID)),
			tgbotapi.NewInlineKeyboardButtonData("🏭 Поставщики", fmt.Sprintf("mat:sup:%d", r.MaterialID)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(kb...)
}

func (b *Bot) onCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		b.log.Warn("callback answer failed", "err", err)
	}
	if cb.Message == nil {
		return
	}
	cmd, arg, ok := parseCallback(cb.Data)
	if !ok {
		return
	}
	b.send(tgbotapi.NewMessage(cb.Message.Chat.ID, b.reply(ctx, cmd, arg)))
}

// parseCallback: "mat:form:3" -> ("form", "3").
func parseCallback(data string) (cmd, arg string, ok bool) {
	parts := strings.Split(data, ":")
	if len(parts) != 3 || parts[0] != "mat" {
		return "", "", false
	}
	if _, err := strconv.ParseInt(parts[2], 10, 64); err != nil {
		return "", "", false
	}
	switch parts[1] {
	case "form":
		return "form", parts[2], true
	case "sup":
		return "suppliers", parts[2], true
	}
	return "", "", false
}

func (b *Bot) sendExport(ctx context.Context, chatID int64) {
	rows, err := b.catalog.ListMaterialsForDisplay(ctx)
	if err != nil {
		b.log.Error("export materials", "err", err)
		b.send(tgbotapi.NewMessage(chatID, "Ошибка загрузки материалов"))
		return
	}
	buf := &bytes.Buffer{}
	if err := report.WriteMaterials(buf, rows); err != nil {
		b.log.Error("export materials", "err", err)
		b.send(tgbotapi.NewMessage(chatID, "Ошибка формирования файла"))
		return
	}
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  fmt.Sprintf("materials_%s.xlsx", time.Now().Format("20060102_150405")),
		Bytes: buf.Bytes(),
	})
	doc.Caption = "Список материалов со стоимостью партии"
	b.send(doc)
}
