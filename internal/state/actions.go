package state

// ActionSection describes one tab of the "actions with reports" page.
type ActionSection struct {
	Key   string
	Title string
}

// ActionSections lists the guidance tabs in display order.
func ActionSections() []ActionSection {
	return []ActionSection{
		{Key: "register", Title: "Зарегистрировать отчет"},
		{Key: "automate", Title: "Автоматизировать отчет"},
		{Key: "update", Title: "Актуализировать отчет"},
		{Key: "change_owner", Title: "Сменить владельца отчета"},
		{Key: "delete", Title: "Удалить отчет"},
	}
}

// defaultActionTexts is the stock guidance shown until an admin edits it.
// Texts are markdown; the UI renders them to HTML.
func defaultActionTexts() map[string]string {
	return map[string]string{
		"register": "Чтобы зарегистрировать новый отчет необходимо зайти в Бизнес-глоссарий " +
			"и в левом меню найти раздел «Запросы — Отчеты». В правом верхнем углу выбрать кнопку «Создать».",
		"automate": "Если у вас уже существует отчет, который собирается регулярно «вручную», " +
			"проверьте наличие зарегистрированной информации об этом отчете в Бизнес-глоссарии. " +
			"Если «ручной отчет» отсутствует в реестре отчетов, то прежде, чем направлять заявку " +
			"на автоматизацию, необходимо пройти регистрацию «ручного отчета». После этого можете " +
			"переходить к заявке на автоматизацию отчета: в левом меню Бизнес-глоссария найти раздел " +
			"«Запросы — Отчеты» и в правом верхнем углу выбрать кнопку «Создать».",
		"update": "Чтобы актуализировать существующий отчет, сформируйте запрос на актуализацию " +
			"в Бизнес-глоссарии.",
		"change_owner": "Чтобы сменить владельца отчета, необходимо выбрать один из двух вариантов: " +
			"направить служебную записку в адрес ДБД в свободной форме, либо создать запрос на смену " +
			"владельца отчета в Бизнес-глоссарии, предварительно уточнив ФИО ответственного, который " +
			"будет принимать отчет.",
		"delete": "Чтобы удалить отчет, необходимо сформировать запрос на удаление отчета. Если отчет " +
			"автоматизирован, приложите BIQ и уточните ответственного за автоматизацию, чтобы передать " +
			"информацию для отключения отчета в системе.",
	}
}
