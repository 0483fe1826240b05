// Package telegram is the chat transport: a long-polling bot that feeds
// free-form messages through the assistant and renders resolutions back,
// chunked to fit Telegram's message size cap.
package telegram

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"kalibot/assistant"
	"kalibot/catalog"
	"kalibot/config"
	"kalibot/model"
	"kalibot/storage"
)

// RunHistory is the slice of run storage the bot reads for /status.
type RunHistory interface {
	Recent(ctx context.Context, userID int64, limit int) ([]storage.Run, error)
	CountForUser(ctx context.Context, userID int64) (int, error)
}

// Bot owns the update loop and all command handling.
type Bot struct {
	api        *tgbotapi.BotAPI
	cfg        *config.Config
	assistant  *assistant.Assistant
	dispatcher *assistant.Dispatcher
	catalog    *catalog.Registry
	executor   assistant.Executor
	runs       RunHistory
}

// NewBot connects to the Telegram API with the given token.
func NewBot(token string, cfg *config.Config, asst *assistant.Assistant, disp *assistant.Dispatcher, reg *catalog.Registry, exec assistant.Executor, runs RunHistory) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Telegram: %w", err)
	}
	return &Bot{
		api:        api,
		cfg:        cfg,
		assistant:  asst,
		dispatcher: disp,
		catalog:    reg,
		executor:   exec,
		runs:       runs,
	}, nil
}

// Run long-polls for updates until the context is cancelled. Handler
// panics or errors never stop the loop.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)

	if config.DebugLog != nil {
		config.DebugLog.Printf("telegram bot @%s polling", b.api.Self.UserName)
	}

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			// Each update gets its own goroutine so one long tool run
			// cannot block every other chat. Shared state (store,
			// catalog, run storage) is mutex-guarded.
			go b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil && config.DebugLog != nil {
			config.DebugLog.Printf("handler panic: %v", r)
		}
	}()

	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	if !b.cfg.UserAllowed(userID) {
		b.send(msg.Chat.ID, "❌ You are not authorized to use this bot.")
		return
	}

	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}
	if strings.TrimSpace(msg.Text) == "" {
		return
	}

	b.typing(msg.Chat.ID)

	routed, err := b.assistant.Chat(ctx, userID, msg.Text)
	if err != nil && config.DebugLog != nil {
		config.DebugLog.Printf("chat error for user %d: %v", userID, err)
	}

	// Announce long-running tool calls before executing.
	if routed.Kind == model.KindTool {
		b.send(msg.Chat.ID, fmt.Sprintf("⏳ Running %s...", routed.ToolName))
		b.typing(msg.Chat.ID)
	}

	resolution := b.dispatcher.Dispatch(ctx, userID, routed)

	if resolution.Response.Kind == model.KindToolNotInstalled {
		b.sendInstallOffer(msg.Chat.ID, resolution.Response)
		return
	}
	for _, text := range renderResolution(resolution) {
		b.sendMarkdown(msg.Chat.ID, text)
	}
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.sendMarkdown(msg.Chat.ID, helpText)
	case "help":
		b.sendMarkdown(msg.Chat.ID, helpText)
	case "tools":
		b.sendMarkdown(msg.Chat.ID, renderToolList(b.catalog))
	case "categories":
		b.sendCategoryKeyboard(msg.Chat.ID)
	case "status":
		b.sendMarkdown(msg.Chat.ID, b.renderStatus(ctx, msg.From.ID))
	case "clear":
		b.assistant.ClearContext(msg.From.ID)
		b.send(msg.Chat.ID, "🧹 Conversation context cleared.")
	default:
		b.send(msg.Chat.ID, "Unknown command. Try /help.")
	}
}

func (b *Bot) renderStatus(ctx context.Context, userID int64) string {
	var b2 strings.Builder
	b2.WriteString("📊 *Status*\n\n")

	if b.assistant.Available() {
		fmt.Fprintf(&b2, "AI: ✅ %s\n", b.cfg.AI.Provider)
	} else {
		b2.WriteString("AI: ❌ no provider configured\n")
	}

	installed := len(b.catalog.InstalledEntries())
	fmt.Fprintf(&b2, "Tools: %d installed of %d known\n", installed, len(b.catalog.Names()))
	fmt.Fprintf(&b2, "Context: %d messages\n", b.assistant.ContextSize(userID))

	if b.runs != nil {
		if n, err := b.runs.CountForUser(ctx, userID); err == nil {
			fmt.Fprintf(&b2, "Runs: %d recorded\n", n)
		}
		if recent, err := b.runs.Recent(ctx, userID, 1); err == nil && len(recent) > 0 {
			fmt.Fprintf(&b2, "Last run: %s (exit %d)\n", recent[0].Tool, recent[0].ExitCode)
		}
	}
	return b2.String()
}

func (b *Bot) sendCategoryKeyboard(chatID int64) {
	categories := b.catalog.Categories()
	var rows [][]tgbotapi.InlineKeyboardButton
	for i := 0; i < len(categories); i += 2 {
		row := []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(categories[i], "cat_"+categories[i]),
		}
		if i+1 < len(categories) {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(categories[i+1], "cat_"+categories[i+1]))
		}
		rows = append(rows, row)
	}

	msg := tgbotapi.NewMessage(chatID, "📂 Pick a category:")
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	b.sendRaw(msg)
}

func (b *Bot) sendInstallOffer(chatID int64, resp model.RoutedResponse) {
	text := renderNotInstalled(resp) + "\n\nInstall it now?"
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Yes, install", "install_"+resp.ToolName),
			tgbotapi.NewInlineKeyboardButtonData("❌ No", "install_cancel"),
		),
	)
	b.sendRaw(msg)
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if !b.cfg.UserAllowed(cb.From.ID) {
		return
	}
	// Ack first so the client stops its spinner.
	if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil && config.DebugLog != nil {
		config.DebugLog.Printf("callback ack failed: %v", err)
	}

	chatID := cb.Message.Chat.ID
	data := cb.Data

	switch {
	case strings.HasPrefix(data, "cat_"):
		b.sendMarkdown(chatID, renderCategory(b.catalog, strings.TrimPrefix(data, "cat_")))
	case data == "install_cancel":
		b.send(chatID, "Okay, not installing anything.")
	case strings.HasPrefix(data, "install_"):
		b.installTool(ctx, chatID, strings.TrimPrefix(data, "install_"))
	}
}

// installTool runs the suggested install command for a tool the user
// approved, then rescans so the catalog reflects the new state. The catalog
// decides manager and package name; installing the bare tool name would miss
// tools whose package is named differently (searchsploit via exploitdb) or
// that install through gem or pip.
func (b *Bot) installTool(ctx context.Context, chatID int64, tool string) {
	b.send(chatID, fmt.Sprintf("📦 Installing %s...", tool))
	b.typing(chatID)

	manager, pkg := b.catalog.InstallSpec(tool)
	res, err := b.executor.Execute(ctx, "install_package", map[string]any{"package": pkg, "manager": manager})
	if err != nil || !res.Success {
		detail := res.Err
		if detail == "" {
			detail = res.Stderr
		}
		b.send(chatID, fmt.Sprintf("❌ Install failed: %s", detail))
		return
	}

	b.catalog.Scan(ctx)
	if b.catalog.Installed(tool) {
		b.send(chatID, fmt.Sprintf("✅ %s installed.", tool))
	} else {
		b.send(chatID, fmt.Sprintf("⚠️ Install finished but %s is still not on PATH.", tool))
	}
}

func (b *Bot) typing(chatID int64) {
	b.sendRaw(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping))
}

func (b *Bot) send(chatID int64, text string) {
	b.sendRaw(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) sendMarkdown(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.api.Send(msg); err != nil {
		// Markdown can fail on tool output containing unbalanced markers;
		// retry plain.
		msg.ParseMode = ""
		b.sendRaw(msg)
	}
}

func (b *Bot) sendRaw(c tgbotapi.Chattable) {
	if _, err := b.api.Send(c); err != nil && config.DebugLog != nil {
		config.DebugLog.Printf("send failed: %v", err)
	}
}
