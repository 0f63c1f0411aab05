package menus

import "github.com/zamm-dev/navedit/internal/i18n"

var (
	loadingMessage = &i18n.Message{
		ID:    "menus_loading",
		Other: "Loading menus…",
	}
	loadFailedMessage = &i18n.Message{
		ID:    "menus_load_failed",
		Other: "Could not load menus: {{.Error}}",
	}
	retryHintMessage = &i18n.Message{
		ID:    "menus_retry_hint",
		Other: "Press r to retry, q to quit",
	}
	createFirstMessage = &i18n.Message{
		ID:    "menus_create_first",
		Other: "Create your first menu below.",
	}
	createAdditionalMessage = &i18n.Message{
		ID:    "menus_create_additional",
		Other: "Create a new menu below.",
	}
	createLinkMessage = &i18n.Message{
		ID:    "menus_create_link",
		Other: "Create a new menu",
	}
	selectLabelMessage = &i18n.Message{
		ID:    "menus_select_label",
		Other: "Select navigation to edit:",
	}
	nameLabelMessage = &i18n.Message{
		ID:    "menus_name_label",
		Other: "Menu name",
	}
	namePlaceholderMessage = &i18n.Message{
		ID:    "menus_name_placeholder",
		Other: "e.g. Primary Menu",
	}
	nameEmptyMessage = &i18n.Message{
		ID:    "menus_name_empty",
		Other: "Please enter a menu name.",
	}
	nameTakenMessage = &i18n.Message{
		ID:    "menus_name_taken",
		Other: "A menu with that name already exists.",
	}
	createFailedMessage = &i18n.Message{
		ID:    "menus_create_failed",
		Other: "Could not create the menu: {{.Error}}",
	}
	createHintMessage = &i18n.Message{
		ID:    "menus_create_hint",
		Other: "Enter to create",
	}
	cancelHintMessage = &i18n.Message{
		ID:    "menus_cancel_hint",
		Other: "Esc to cancel",
	}
	deleteTitleMessage = &i18n.Message{
		ID:    "menus_delete_title",
		Other: "Delete menu",
	}
	deleteConfirmMessage = &i18n.Message{
		ID:    "menus_delete_confirm",
		Other: "Delete the menu \"{{.Name}}\"? This cannot be undone.",
	}
	deleteFailedMessage = &i18n.Message{
		ID:    "menus_delete_failed",
		Other: "Could not delete the menu: {{.Error}}",
	}
	savedMessage = &i18n.Message{
		ID:    "menus_saved",
		Other: "Menu saved.",
	}
	saveFailedMessage = &i18n.Message{
		ID:    "menus_save_failed",
		Other: "Could not save the menu: {{.Error}}",
	}
	slugCopiedMessage = &i18n.Message{
		ID:    "menus_slug_copied",
		Other: "Copied slug {{.Slug}}.",
	}
	slugCopyFailedMessage = &i18n.Message{
		ID:    "menus_slug_copy_failed",
		Other: "Could not copy slug {{.Slug}}.",
	}
	slugTitleMessage = &i18n.Message{
		ID:    "menus_slug_title",
		Other: "Edit slug",
	}
	noItemsMessage = &i18n.Message{
		ID:    "menus_no_items",
		Other: "This menu has no items yet.",
	}
	itemLabelPlaceholderMessage = &i18n.Message{
		ID:    "menus_item_label_placeholder",
		Other: "Label",
	}
	itemURLPlaceholderMessage = &i18n.Message{
		ID:    "menus_item_url_placeholder",
		Other: "URL",
	}
	itemRequiredMessage = &i18n.Message{
		ID:    "menus_item_required",
		Other: "Both a label and a URL are required.",
	}
	unsavedMessage = &i18n.Message{
		ID:    "menus_unsaved",
		Other: "unsaved",
	}
)

func localizeError(message *i18n.Message, err error) string {
	return i18n.Localize(message, map[string]interface{}{"Error": err.Error()})
}
