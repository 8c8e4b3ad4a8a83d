package i18n

var english = map[Key]string{
	MsgWelcome: "Welcome to the Lists & Ratings Bot!\n\n" +
		"You can use this bot to create lists and rate items from 0 to 10, with the option to add comments to your ratings.\n\n" +
		"Commands:\n" +
		"/additem - Add an item to a list\n" +
		"/lists - View all available lists\n" +
		"/viewlist - View items in a specific list\n" +
		"/rate - Rate an item in a list and add comments\n" +
		"/ratings - View ratings and comments for items in a list\n" +
		"/help - Show this help message\n" +
		"/cancel - Cancel the current operation",
	MsgHelp: "Lists & Ratings Bot commands:\n\n" +
		"/additem - Add an item to a list\n" +
		"/lists - View all available lists\n" +
		"/viewlist - View items in a specific list\n" +
		"/rate - Rate an item (0-10) and add comments\n" +
		"/ratings - View ratings and comments for items\n" +
		"/help - Show this help message\n" +
		"/cancel - Cancel the current operation\n\n" +
		"Rating tips:\n" +
		"- When rating items, you can add a comment explaining your rating\n" +
		"- Use /skip to skip adding a comment if you don't want to explain your rating",
	MsgAdminSection: "\n\nAdmin commands (only available to chat administrators):\n" +
		"/newlist - Create a new list\n" +
		"/deletelist - Delete a list and all its items\n" +
		"/deleteitem - Delete an item from a list\n" +
		"/deleterating - Delete a specific rating\n" +
		"/clearratings - Clear all ratings for an item",

	MsgCancelled:       "Operation cancelled.",
	MsgNothingToCancel: "There is nothing to cancel.",
	MsgUnknownCommand:  "I don't know that command. Use /help to see what I can do.",
	MsgUnexpectedInput: "I wasn't expecting that here. The current operation has been cancelled; use /help to see what I can do.",
	MsgIdleText:        "I wasn't expecting a message right now. Use /help to see what I can do.",
	MsgStaleContext:    "Something went wrong. Please try again with /%s",
	MsgAdminOnly:       "This command is only available to chat administrators.",

	MsgNoListsYet:  "You don't have any lists yet. Create one first with /newlist",
	MsgListsHeader: "Your lists:\n",
	MsgListLine:    "%d. %s",
	MsgSkipNoFlow:  "There is no comment to skip right now.",

	MsgCreateListPrompt: "Let's create a new list! What would you like to name your list?",
	MsgDuplicateList:    "You already have a list named '%s'. Please choose a different name.",
	MsgListCreated:      "Great! I've created a new list called '%s'.\nYou can add items to it with /additem",

	MsgChooseListAdd: "Choose a list to add an item to:",
	MsgItemPrompt:    "What item would you like to add to '%s'?",
	MsgDuplicateItem: "'%s' already exists in '%s'. Please add a different item.",
	MsgItemAdded:     "Added '%s' to '%s'!\nYou can rate it with /rate",

	MsgChooseListView:  "Choose a list to view:",
	MsgEmptyList:       "The list '%s' is empty. Add items with /additem",
	MsgItemsHeader:     "Items in '%s':\n",
	MsgItemLineRated:   "%d. %s - Average rating: %.1f",
	MsgItemLineUnrated: "%d. %s - Average rating: Not yet rated",

	MsgChooseListRate:   "Choose a list that contains the item you want to rate:",
	MsgChooseItemRate:   "Choose an item from '%s' to rate:",
	MsgScorePrompt:      "Rate '%s' on a scale from 0 to 10:",
	MsgCommentPrompt:    "You're giving '%s' a %d/10!\n\nWould you like to add a comment about why you gave this rating?\nType your comment or send /skip to continue without a comment.",
	MsgRatedWithComment: "You rated '%s' a %d/10 with the comment:\n\n\"%s\"",
	MsgRatedNoComment:   "You rated '%s' a %d/10 without a comment.",

	MsgChooseListRatings:  "Choose a list to view ratings:",
	MsgRatingsHeader:      "Ratings for items in '%s':\n",
	MsgRatingsItemBullet:  "• %s",
	MsgRatingsAverage:     "  Average: %.1f/10",
	MsgRatingsAllLabel:    "  All ratings:",
	MsgRatingLine:         "    %d. %d/10",
	MsgRatingLineComment:  "    %d. %d/10 - \"%s\"",
	MsgRatingsItemUnrated: "• %s: Not yet rated\n",
	MsgTruncated:          "\n\n... (message truncated due to length)",

	MsgChooseListDelete:    "⚠️ Choose a list to DELETE:",
	MsgConfirmDeleteList:   "⚠️ Are you sure you want to delete the list '%s' and all its items and ratings?\n\nThis action cannot be undone!",
	MsgBtnYesDeleteList:    "Yes, delete this list",
	MsgBtnNoKeepList:       "No, keep this list",
	MsgDeleteListCancelled: "Deletion cancelled. Your list is safe.",
	MsgListDeleted:         "The list '%s' has been deleted.",
	MsgDeleteListFailed:    "Failed to delete the list '%s'. Please try again later.",

	MsgChooseListDeleteItem: "Choose a list that contains the item you want to delete:",
	MsgChooseItemDelete:     "⚠️ Choose an item from '%s' to DELETE:",
	MsgConfirmDeleteItem:    "⚠️ Are you sure you want to delete the item '%s' from the list '%s'?\n\nThis will delete all ratings and comments for this item. This action cannot be undone!",
	MsgBtnYesDeleteItem:     "Yes, delete this item",
	MsgBtnNoKeepItem:        "No, keep this item",
	MsgDeleteItemCancelled:  "Deletion cancelled. Your item is safe.",
	MsgItemDeleted:          "The item '%s' has been deleted from the list '%s'.",
	MsgDeleteItemFailed:     "Failed to delete the item '%s'. Please try again later.",

	MsgChooseListDeleteRating: "Choose a list that contains the item with ratings you want to delete:",
	MsgNoRatedItems:           "No items in the list '%s' have ratings yet.",
	MsgChooseItemDeleteRating: "Choose an item from '%s' with ratings to delete:",
	MsgChooseRatingDelete:     "⚠️ Choose a rating to DELETE for the item '%s':",
	MsgBtnDeleteAllRatings:    "Delete ALL ratings",
	MsgRatingInfo:             "%d/10",
	MsgRatingInfoComment:      "%d/10 with comment: \"%s\"",
	MsgConfirmDeleteRating:    "⚠️ Are you sure you want to delete the rating (%s) for the item '%s'?\n\nThis action cannot be undone!",
	MsgConfirmDeleteAll:       "⚠️ Are you sure you want to delete ALL ratings for the item '%s'?\n\nThis action cannot be undone!",
	MsgBtnYesDeleteRating:     "Yes, delete this rating",
	MsgBtnYesDeleteAll:        "Yes, delete ALL ratings",
	MsgBtnNoKeepRating:        "No, keep this rating",
	MsgBtnNoKeepRatings:       "No, keep the ratings",
	MsgDeleteRatingCancelled:  "Deletion cancelled. The rating is safe.",
	MsgRatingDeleted:          "The selected rating for the item '%s' has been deleted.",
	MsgAllRatingsDeleted:      "All ratings for the item '%s' have been deleted.",
	MsgDeleteRatingFailed:     "Failed to delete the rating. Please try again later.",

	MsgChooseListClear: "Choose a list that contains the item with ratings you want to clear:",
	MsgChooseItemClear: "Choose an item from '%s' to clear all ratings:",
	MsgConfirmClear:    "⚠️ Are you sure you want to clear ALL ratings for the item '%s'?\n\nThis will delete all ratings and comments for this item. This action cannot be undone!",
	MsgBtnYesClear:     "Yes, clear ALL ratings",
	MsgBtnNoKeepClear:  "No, keep the ratings",
	MsgClearCancelled:  "Operation cancelled. Your ratings are safe.",
	MsgRatingsCleared:  "All ratings for the item '%s' have been cleared.",
	MsgClearFailed:     "Failed to clear ratings for the item '%s'. Please try again later.",
}
