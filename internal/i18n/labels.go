package i18n

var en = map[string]string{
	"chart_summary":      "Latest %s  Min %s  Max %s",
	"lines_ignored":      "%d series lines ignored",
	"others":             "Others",
	"kpis":               "Key figures",
	"gauges":             "Utilization",
	"help_scroll_hint":   "j/k scroll",
	"initializing":       "Initializing...",
	"loading":            "Loading dashboard...",
	"terminal_too_small": "Terminal too small (need 80x24)",
	"current_size":       "Current: %dx%d",
	"tab_overview":       "Overview",
	"tab_tables":         "Tables",
	"tab_shares":         "Shares",
	"no_data":            "No data",
	"vs_previous":        "vs previous",
	"updated":            "Updated %s",
	"modified":           "Modified %s",
	"reload_failed":      "Reload failed: %s",
	"reloaded":           "Dashboard reloaded",
	"status_help":        "help",
	"status_settings":    "settings",
	"status_refresh":     "reload",
	"status_quit":        "quit",

	"keyboard_shortcuts": "Keyboard Shortcuts",
	"help_switch_views":  "Switch view",
	"help_cycle_views":   "Cycle views",
	"help_scroll":        "Scroll",
	"help_toggle_help":   "Toggle help",
	"help_open_settings": "Open settings",
	"help_force_reload":  "Reload dashboard",
	"help_quit":          "Quit",
	"help_close":         "  Press ? or Esc to close",

	"settings":         "Settings",
	"setting_locale":   "Locale",
	"setting_currency": "Currency",
	"setting_language": "Language",
	"setting_refresh":  "Reload (sec)",
	"settings_help":    "  j/k move  h/l change  Esc save",
}

var de = map[string]string{
	"chart_summary":      "Aktuell %s  Min %s  Max %s",
	"lines_ignored":      "%d Zeilen der Reihe ignoriert",
	"others":             "Sonstige",
	"kpis":               "Kennzahlen",
	"gauges":             "Auslastung",
	"help_scroll_hint":   "j/k blättern",
	"initializing":       "Initialisierung...",
	"loading":            "Dashboard wird geladen...",
	"terminal_too_small": "Terminal zu klein (mindestens 80x24)",
	"current_size":       "Aktuell: %dx%d",
	"tab_overview":       "Übersicht",
	"tab_tables":         "Tabellen",
	"tab_shares":         "Anteile",
	"no_data":            "Keine Daten",
	"vs_previous":        "ggü. Vorperiode",
	"updated":            "Aktualisiert %s",
	"modified":           "Geändert %s",
	"reload_failed":      "Neuladen fehlgeschlagen: %s",
	"reloaded":           "Dashboard neu geladen",
	"status_help":        "Hilfe",
	"status_settings":    "Einstellungen",
	"status_refresh":     "neu laden",
	"status_quit":        "beenden",

	"keyboard_shortcuts": "Tastenkürzel",
	"help_switch_views":  "Ansicht wechseln",
	"help_cycle_views":   "Ansichten durchlaufen",
	"help_scroll":        "Blättern",
	"help_toggle_help":   "Hilfe ein/aus",
	"help_open_settings": "Einstellungen öffnen",
	"help_force_reload":  "Dashboard neu laden",
	"help_quit":          "Beenden",
	"help_close":         "  ? oder Esc zum Schließen",

	"settings":         "Einstellungen",
	"setting_locale":   "Gebietsschema",
	"setting_currency": "Währung",
	"setting_language": "Sprache",
	"setting_refresh":  "Neuladen (s)",
	"settings_help":    "  j/k bewegen  h/l ändern  Esc speichern",
}

var ja = map[string]string{
	"chart_summary":      "最新 %s  最小 %s  最大 %s",
	"lines_ignored":      "%d 行を無視しました",
	"others":             "その他",
	"kpis":               "主要指標",
	"gauges":             "使用率",
	"help_scroll_hint":   "j/k スクロール",
	"initializing":       "初期化中...",
	"loading":            "ダッシュボードを読み込み中...",
	"terminal_too_small": "端末が小さすぎます (80x24 以上)",
	"current_size":       "現在: %dx%d",
	"tab_overview":       "概要",
	"tab_tables":         "テーブル",
	"tab_shares":         "構成比",
	"no_data":            "データなし",
	"vs_previous":        "前期比",
	"updated":            "更新 %s",
	"modified":           "変更 %s",
	"reload_failed":      "再読み込み失敗: %s",
	"reloaded":           "再読み込みしました",
	"status_help":        "ヘルプ",
	"status_settings":    "設定",
	"status_refresh":     "再読み込み",
	"status_quit":        "終了",

	"keyboard_shortcuts": "キーボードショートカット",
	"help_switch_views":  "ビュー切替",
	"help_cycle_views":   "ビュー巡回",
	"help_scroll":        "スクロール",
	"help_toggle_help":   "ヘルプ表示切替",
	"help_open_settings": "設定を開く",
	"help_force_reload":  "再読み込み",
	"help_quit":          "終了",
	"help_close":         "  ? または Esc で閉じる",

	"settings":         "設定",
	"setting_locale":   "ロケール",
	"setting_currency": "通貨",
	"setting_language": "言語",
	"setting_refresh":  "再読込 (秒)",
	"settings_help":    "  j/k 移動  h/l 変更  Esc 保存",
}
