package i18n

var spanish = map[Key]string{
	MsgWelcome: "¡Bienvenido al Bot de Listas y Valoraciones!\n\n" +
		"Puedes usar este bot para crear listas y valorar elementos del 0 al 10, con la opción de añadir comentarios a tus valoraciones.\n\n" +
		"Comandos:\n" +
		"/additem - Añadir un elemento a una lista\n" +
		"/lists - Ver todas las listas disponibles\n" +
		"/viewlist - Ver elementos de una lista específica\n" +
		"/rate - Valorar un elemento de una lista y añadir comentarios\n" +
		"/ratings - Ver valoraciones y comentarios de elementos en una lista\n" +
		"/help - Mostrar este mensaje de ayuda\n" +
		"/cancel - Cancelar la operación actual",
	MsgHelp: "Comandos del Bot de Listas y Valoraciones:\n\n" +
		"/additem - Añadir un elemento a una lista\n" +
		"/lists - Ver todas las listas disponibles\n" +
		"/viewlist - Ver elementos de una lista específica\n" +
		"/rate - Valorar un elemento (0-10) y añadir comentarios\n" +
		"/ratings - Ver valoraciones y comentarios de elementos\n" +
		"/help - Mostrar este mensaje de ayuda\n" +
		"/cancel - Cancelar la operación actual\n\n" +
		"Consejos para valoraciones:\n" +
		"- Al valorar elementos, puedes añadir un comentario explicando tu valoración\n" +
		"- Usa /skip para omitir añadir un comentario si no quieres explicar tu valoración",
	MsgAdminSection: "\n\nComandos de administrador (solo disponibles para administradores del chat):\n" +
		"/newlist - Crear una nueva lista\n" +
		"/deletelist - Eliminar una lista y todos sus elementos\n" +
		"/deleteitem - Eliminar un elemento de una lista\n" +
		"/deleterating - Eliminar una valoración específica\n" +
		"/clearratings - Borrar todas las valoraciones de un elemento",

	MsgCancelled:       "Operación cancelada.",
	MsgNothingToCancel: "No hay nada que cancelar.",
	MsgUnknownCommand:  "No conozco ese comando. Usa /help para ver lo que puedo hacer.",
	MsgUnexpectedInput: "No esperaba eso aquí. La operación actual ha sido cancelada; usa /help para ver lo que puedo hacer.",
	MsgIdleText:        "No esperaba un mensaje ahora mismo. Usa /help para ver lo que puedo hacer.",
	MsgStaleContext:    "Algo salió mal. Por favor, inténtalo de nuevo con /%s",
	MsgAdminOnly:       "Este comando solo está disponible para los administradores del chat.",

	MsgNoListsYet:  "Todavía no tienes listas. Crea una primero con /newlist",
	MsgListsHeader: "Tus listas:\n",
	MsgListLine:    "%d. %s",
	MsgSkipNoFlow:  "No hay ningún comentario que omitir ahora mismo.",

	MsgCreateListPrompt: "¡Vamos a crear una nueva lista! ¿Cómo quieres llamarla?",
	MsgDuplicateList:    "Ya tienes una lista llamada '%s'. Por favor, elige otro nombre.",
	MsgListCreated:      "¡Genial! He creado una nueva lista llamada '%s'.\nPuedes añadir elementos con /additem",

	MsgChooseListAdd: "Elige una lista a la que añadir un elemento:",
	MsgItemPrompt:    "¿Qué elemento quieres añadir a '%s'?",
	MsgDuplicateItem: "'%s' ya existe en '%s'. Por favor, añade un elemento diferente.",
	MsgItemAdded:     "¡'%s' añadido a '%s'!\nPuedes valorarlo con /rate",

	MsgChooseListView:  "Elige una lista para ver:",
	MsgEmptyList:       "La lista '%s' está vacía. Añade elementos con /additem",
	MsgItemsHeader:     "Elementos en '%s':\n",
	MsgItemLineRated:   "%d. %s - Valoración media: %.1f",
	MsgItemLineUnrated: "%d. %s - Valoración media: Sin valorar",

	MsgChooseListRate:   "Elige la lista que contiene el elemento que quieres valorar:",
	MsgChooseItemRate:   "Elige un elemento de '%s' para valorar:",
	MsgScorePrompt:      "Valora '%s' en una escala de 0 a 10:",
	MsgCommentPrompt:    "¡Le estás dando a '%s' un %d/10!\n\n¿Quieres añadir un comentario explicando tu valoración?\nEscribe tu comentario o envía /skip para continuar sin comentario.",
	MsgRatedWithComment: "Has valorado '%s' con un %d/10 y el comentario:\n\n\"%s\"",
	MsgRatedNoComment:   "Has valorado '%s' con un %d/10 sin comentario.",

	MsgChooseListRatings:  "Elige una lista para ver sus valoraciones:",
	MsgRatingsHeader:      "Valoraciones de los elementos en '%s':\n",
	MsgRatingsItemBullet:  "• %s",
	MsgRatingsAverage:     "  Media: %.1f/10",
	MsgRatingsAllLabel:    "  Todas las valoraciones:",
	MsgRatingLine:         "    %d. %d/10",
	MsgRatingLineComment:  "    %d. %d/10 - \"%s\"",
	MsgRatingsItemUnrated: "• %s: Sin valorar\n",
	MsgTruncated:          "\n\n... (mensaje truncado por longitud)",

	MsgChooseListDelete:    "⚠️ Elige una lista para ELIMINAR:",
	MsgConfirmDeleteList:   "⚠️ ¿Seguro que quieres eliminar la lista '%s' y todos sus elementos y valoraciones?\n\n¡Esta acción no se puede deshacer!",
	MsgBtnYesDeleteList:    "Sí, eliminar esta lista",
	MsgBtnNoKeepList:       "No, conservar esta lista",
	MsgDeleteListCancelled: "Eliminación cancelada. Tu lista está a salvo.",
	MsgListDeleted:         "La lista '%s' ha sido eliminada.",
	MsgDeleteListFailed:    "No se pudo eliminar la lista '%s'. Inténtalo de nuevo más tarde.",

	MsgChooseListDeleteItem: "Elige la lista que contiene el elemento que quieres eliminar:",
	MsgChooseItemDelete:     "⚠️ Elige un elemento de '%s' para ELIMINAR:",
	MsgConfirmDeleteItem:    "⚠️ ¿Seguro que quieres eliminar el elemento '%s' de la lista '%s'?\n\nEsto borrará todas sus valoraciones y comentarios. ¡Esta acción no se puede deshacer!",
	MsgBtnYesDeleteItem:     "Sí, eliminar este elemento",
	MsgBtnNoKeepItem:        "No, conservar este elemento",
	MsgDeleteItemCancelled:  "Eliminación cancelada. Tu elemento está a salvo.",
	MsgItemDeleted:          "El elemento '%s' ha sido eliminado de la lista '%s'.",
	MsgDeleteItemFailed:     "No se pudo eliminar el elemento '%s'. Inténtalo de nuevo más tarde.",

	MsgChooseListDeleteRating: "Elige la lista que contiene el elemento con valoraciones que quieres eliminar:",
	MsgNoRatedItems:           "Ningún elemento de la lista '%s' tiene valoraciones todavía.",
	MsgChooseItemDeleteRating: "Elige un elemento de '%s' con valoraciones para eliminar:",
	MsgChooseRatingDelete:     "⚠️ Elige una valoración para ELIMINAR del elemento '%s':",
	MsgBtnDeleteAllRatings:    "Eliminar TODAS las valoraciones",
	MsgRatingInfo:             "%d/10",
	MsgRatingInfoComment:      "%d/10 con el comentario: \"%s\"",
	MsgConfirmDeleteRating:    "⚠️ ¿Seguro que quieres eliminar la valoración (%s) del elemento '%s'?\n\n¡Esta acción no se puede deshacer!",
	MsgConfirmDeleteAll:       "⚠️ ¿Seguro que quieres eliminar TODAS las valoraciones del elemento '%s'?\n\n¡Esta acción no se puede deshacer!",
	MsgBtnYesDeleteRating:     "Sí, eliminar esta valoración",
	MsgBtnYesDeleteAll:        "Sí, eliminar TODAS las valoraciones",
	MsgBtnNoKeepRating:        "No, conservar esta valoración",
	MsgBtnNoKeepRatings:       "No, conservar las valoraciones",
	MsgDeleteRatingCancelled:  "Eliminación cancelada. La valoración está a salvo.",
	MsgRatingDeleted:          "La valoración seleccionada del elemento '%s' ha sido eliminada.",
	MsgAllRatingsDeleted:      "Todas las valoraciones del elemento '%s' han sido eliminadas.",
	MsgDeleteRatingFailed:     "No se pudo eliminar la valoración. Inténtalo de nuevo más tarde.",

	MsgChooseListClear: "Elige la lista que contiene el elemento cuyas valoraciones quieres borrar:",
	MsgChooseItemClear: "Elige un elemento de '%s' para borrar todas sus valoraciones:",
	MsgConfirmClear:    "⚠️ ¿Seguro que quieres borrar TODAS las valoraciones del elemento '%s'?\n\nEsto eliminará todas sus valoraciones y comentarios. ¡Esta acción no se puede deshacer!",
	MsgBtnYesClear:     "Sí, borrar TODAS las valoraciones",
	MsgBtnNoKeepClear:  "No, conservar las valoraciones",
	MsgClearCancelled:  "Operación cancelada. Tus valoraciones están a salvo.",
	MsgRatingsCleared:  "Todas las valoraciones del elemento '%s' han sido borradas.",
	MsgClearFailed:     "No se pudieron borrar las valoraciones del elemento '%s'. Inténtalo de nuevo más tarde.",
}
