// Package i18n holds the reply message catalogs. The engine's control
// logic is language-independent; every user-visible string is looked up
// here by key, so adding a language is a data change, not a code change.
package i18n

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Key identifies a message template in a catalog.
type Key string

// Message keys. Templates use fmt verbs; the engine supplies arguments in
// the order documented next to each key.
const (
	MsgWelcome      Key = "welcome"       // no args
	MsgHelp         Key = "help"          // no args
	MsgAdminSection Key = "admin_section" // no args, appended for admins

	MsgCancelled       Key = "cancelled"        // no args
	MsgNothingToCancel Key = "nothing_cancel"   // no args
	MsgUnknownCommand  Key = "unknown_command"  // no args
	MsgUnexpectedInput Key = "unexpected_input" // no args
	MsgIdleText        Key = "idle_text"        // no args
	MsgStaleContext    Key = "stale_context"    // command name
	MsgAdminOnly       Key = "admin_only"       // no args

	MsgNoListsYet  Key = "no_lists_yet"  // no args
	MsgListsHeader Key = "lists_header"  // no args
	MsgListLine    Key = "lists_line"    // index, list
	MsgSkipNoFlow  Key = "skip_no_flow"  // no args

	MsgCreateListPrompt Key = "create_list_prompt" // no args
	MsgDuplicateList    Key = "duplicate_list"     // list
	MsgListCreated      Key = "list_created"       // list

	MsgChooseListAdd Key = "choose_list_add" // no args
	MsgItemPrompt    Key = "item_prompt"     // list
	MsgDuplicateItem Key = "duplicate_item"  // item, list
	MsgItemAdded     Key = "item_added"      // item, list

	MsgChooseListView Key = "choose_list_view" // no args
	MsgEmptyList      Key = "empty_list"       // list
	MsgItemsHeader    Key = "items_header"     // list
	MsgItemLineRated  Key = "item_line_rated"  // index, item, average
	MsgItemLineUnrated Key = "item_line_unrated" // index, item

	MsgChooseListRate  Key = "choose_list_rate"  // no args
	MsgChooseItemRate  Key = "choose_item_rate"  // list
	MsgScorePrompt     Key = "score_prompt"      // item
	MsgCommentPrompt   Key = "comment_prompt"    // item, score
	MsgRatedWithComment Key = "rated_with_comment" // item, score, comment
	MsgRatedNoComment  Key = "rated_no_comment"  // item, score

	MsgChooseListRatings  Key = "choose_list_ratings"  // no args
	MsgRatingsHeader      Key = "ratings_header"       // list
	MsgRatingsItemBullet  Key = "ratings_item_bullet"  // item
	MsgRatingsAverage     Key = "ratings_average"      // average
	MsgRatingsAllLabel    Key = "ratings_all_label"    // no args
	MsgRatingLine         Key = "rating_line"          // index, score
	MsgRatingLineComment  Key = "rating_line_comment"  // index, score, comment
	MsgRatingsItemUnrated Key = "ratings_item_unrated" // item
	MsgTruncated          Key = "truncated"            // no args

	MsgChooseListDelete   Key = "choose_list_delete"   // no args
	MsgConfirmDeleteList  Key = "confirm_delete_list"  // list
	MsgBtnYesDeleteList   Key = "btn_yes_delete_list"  // no args
	MsgBtnNoKeepList      Key = "btn_no_keep_list"     // no args
	MsgDeleteListCancelled Key = "delete_list_cancelled" // no args
	MsgListDeleted        Key = "list_deleted"         // list
	MsgDeleteListFailed   Key = "delete_list_failed"   // list

	MsgChooseListDeleteItem Key = "choose_list_delete_item" // no args
	MsgChooseItemDelete     Key = "choose_item_delete"      // list
	MsgConfirmDeleteItem    Key = "confirm_delete_item"     // item, list
	MsgBtnYesDeleteItem     Key = "btn_yes_delete_item"     // no args
	MsgBtnNoKeepItem        Key = "btn_no_keep_item"        // no args
	MsgDeleteItemCancelled  Key = "delete_item_cancelled"   // no args
	MsgItemDeleted          Key = "item_deleted"            // item, list
	MsgDeleteItemFailed     Key = "delete_item_failed"      // item

	MsgChooseListDeleteRating Key = "choose_list_delete_rating" // no args
	MsgNoRatedItems           Key = "no_rated_items"            // list
	MsgChooseItemDeleteRating Key = "choose_item_delete_rating" // list
	MsgChooseRatingDelete     Key = "choose_rating_delete"      // item
	MsgBtnDeleteAllRatings    Key = "btn_delete_all_ratings"    // no args
	MsgRatingInfo             Key = "rating_info"               // score
	MsgRatingInfoComment      Key = "rating_info_comment"       // score, comment
	MsgConfirmDeleteRating    Key = "confirm_delete_rating"     // rating info, item
	MsgConfirmDeleteAll       Key = "confirm_delete_all"        // item
	MsgBtnYesDeleteRating     Key = "btn_yes_delete_rating"     // no args
	MsgBtnYesDeleteAll        Key = "btn_yes_delete_all"        // no args
	MsgBtnNoKeepRating        Key = "btn_no_keep_rating"        // no args
	MsgBtnNoKeepRatings       Key = "btn_no_keep_ratings"       // no args
	MsgDeleteRatingCancelled  Key = "delete_rating_cancelled"   // no args
	MsgRatingDeleted          Key = "rating_deleted"            // item
	MsgAllRatingsDeleted      Key = "all_ratings_deleted"       // item
	MsgDeleteRatingFailed     Key = "delete_rating_failed"      // no args

	MsgChooseListClear  Key = "choose_list_clear"  // no args
	MsgChooseItemClear  Key = "choose_item_clear"  // list
	MsgConfirmClear     Key = "confirm_clear"      // item
	MsgBtnYesClear      Key = "btn_yes_clear"      // no args
	MsgBtnNoKeepClear   Key = "btn_no_keep_clear"  // no args
	MsgClearCancelled   Key = "clear_cancelled"    // no args
	MsgRatingsCleared   Key = "ratings_cleared"    // item
	MsgClearFailed      Key = "clear_failed"       // item
)

// Catalog is an immutable-by-convention message table for one language.
type Catalog struct {
	lang string
	msgs map[Key]string
}

// For returns the catalog for a language tag, falling back to English for
// unknown tags.
func For(lang string) *Catalog {
	switch lang {
	case "es":
		return &Catalog{lang: "es", msgs: spanish}
	default:
		return &Catalog{lang: "en", msgs: english}
	}
}

// Lang returns the catalog's language tag.
func (c *Catalog) Lang() string { return c.lang }

// Get returns the raw template for a key, falling back to English and then
// to the key itself so a missing entry is visible instead of silent.
func (c *Catalog) Get(k Key) string {
	if s, ok := c.msgs[k]; ok {
		return s
	}
	if s, ok := english[k]; ok {
		return s
	}
	return string(k)
}

// Format renders the template for a key with fmt.Sprintf semantics.
func (c *Catalog) Format(k Key, args ...any) string {
	if len(args) == 0 {
		return c.Get(k)
	}
	return fmt.Sprintf(c.Get(k), args...)
}

// ApplyOverrides replaces individual templates, e.g. from a deployment's
// message file. Unknown keys are accepted so operators can stage entries
// ahead of an upgrade.
func (c *Catalog) ApplyOverrides(overrides map[string]string) {
	merged := make(map[Key]string, len(c.msgs)+len(overrides))
	for k, v := range c.msgs {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[Key(k)] = v
	}
	c.msgs = merged
}

// LoadOverrides reads a YAML file of key -> template pairs.
func LoadOverrides(path string) (map[string]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read message overrides: %w", err)
	}
	overrides := make(map[string]string)
	if err := yaml.Unmarshal(raw, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse message overrides: %w", err)
	}
	return overrides, nil
}

// Keys returns every key defined in the English catalog, which is the
// reference set all languages must cover.
func Keys() []Key {
	keys := make([]Key, 0, len(english))
	for k := range english {
		keys = append(keys, k)
	}
	return keys
}
